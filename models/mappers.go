package models

func StateFromRow(row StateRow) State {
	return State{
		StateID:    row.StateID,
		StateName:  row.StateName,
		Population: row.Population,
	}
}

// StatesFromRows never returns nil so an empty table encodes as []
func StatesFromRows(rows []StateRow) []State {
	states := make([]State, 0, len(rows))
	for _, row := range rows {
		states = append(states, StateFromRow(row))
	}
	return states
}

func DistrictFromRow(row DistrictRow) District {
	return District{
		DistrictID:   row.DistrictID,
		DistrictName: row.DistrictName,
		StateID:      row.StateID,
		Cases:        row.Cases,
		Cured:        row.Cured,
		Active:       row.Active,
		Deaths:       row.Deaths,
	}
}

func StatsFromRow(row StatsRow) StateStats {
	return StateStats{
		TotalCases:  row.Cases,
		TotalCured:  row.Cured,
		TotalActive: row.Active,
		TotalDeaths: row.Deaths,
	}
}

// Row converts the request into the column values written to the district table
func (r DistrictRequest) Row(districtID int64) DistrictRow {
	return DistrictRow{
		DistrictID:   districtID,
		DistrictName: r.DistrictName,
		StateID:      r.StateID,
		Cases:        r.Cases,
		Cured:        r.Cured,
		Active:       r.Active,
		Deaths:       r.Deaths,
	}
}
