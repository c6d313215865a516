package change

import "fmt"

// InvalidParameterError reports a parameter or configuration value
// outside its valid domain. An open-ended range is expressed with
// Max < Min.
type InvalidParameterError struct {
	Name     string
	Value    int
	Min, Max int
}

func (e *InvalidParameterError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("parameter %s = %d: must be at least %d", e.Name, e.Value, e.Min)
	}
	return fmt.Sprintf("parameter %s = %d: valid range is %d to %d", e.Name, e.Value, e.Min, e.Max)
}

// DivideByZeroError reports a statistics request over zero cells.
type DivideByZeroError struct {
	Op string
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("%s: total pixel count is zero", e.Op)
}
