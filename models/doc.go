// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines store rows, request and response types, and the
mappers between them.

# Store Rows

Shapes scanned from the tables (no JSON tags):

  - User: username, password hash
  - StateRow: state_id, state_name, population
  - DistrictRow: district_id, district_name, state_id, cases, cured, active, deaths
  - StatsRow: summed cases, cured, active, deaths for one state

# Request Types

  - LoginRequest: username, password
  - DistrictRequest: districtName, stateId, cases, cured, active, deaths
    (validated: name required, stateId > 0, counters >= 0)

# Response Types

  - LoginResponse: jwtToken
  - State: stateId, stateName, population
  - District: districtId, districtName, stateId, cases, cured, active, deaths
  - StateStats: totalCases, totalCured, totalActive, totalDeaths

# Mappers

Pure functions from rows to responses:

	models.StateFromRow(row)
	models.StatesFromRows(rows)   // never nil
	models.DistrictFromRow(row)
	models.StatsFromRow(row)
*/
package models
