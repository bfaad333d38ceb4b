package models

// LabCell is one column of a canned result row. Rows keep their cells as an
// ordered sequence so the rendered result set is deterministic, column order
// included.
type LabCell struct {
	Column string `bson:"column" json:"column"`
	Value  string `bson:"value" json:"value"`
}

type LabRow []LabCell

type SQLLab struct {
	ID             int64    `bson:"_id" json:"id"`
	ModuleID       int64    `bson:"module_id" json:"moduleId"`
	InitialQuery   string   `bson:"initial_query" json:"initialQuery"`
	ExpectedResult []LabRow `bson:"expected_result" json:"expectedResult"`
	Instructions   string   `bson:"instructions" json:"instructions"`
}

// LabRunResult is what the simulated sandbox returns for an executed query.
type LabRunResult struct {
	Success       bool     `json:"success"`
	Results       []LabRow `json:"results"`
	ExecutionTime string   `json:"executionTime"`
	RowCount      int      `json:"rowCount"`
}
