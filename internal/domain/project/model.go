package project

// Project is a production job tracked through the stage board.
type Project struct {
	ID              string `json:"id"`
	ProjectNo       string `json:"projectNo"`
	ProjectName     string `json:"projectName"`
	CustomerName    string `json:"customerName"`
	Owner           string `json:"owner"`
	ProjectDate     string `json:"projectDate"`
	TargetDate      string `json:"targetDate"`
	DispatchMonth   string `json:"dispatchMonth"`
	ProductionStage string `json:"productionStage"`
	Remarks         string `json:"remarks"`
}

// NumberCheck is the advisory result of a project number lookup.
type NumberCheck struct {
	ProjectNo string `json:"projectNo"`
	Duplicate bool   `json:"duplicate"`
	Message   string `json:"message,omitempty"`
}
