package config

import "fmt"

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validateAtLeast(field string, value, min int) []ValidationError {
	if value < min {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d", min),
		}}
	}
	return nil
}

func validateRange(field string, r Range) []ValidationError {
	if r.Min > r.Max {
		return []ValidationError{{
			Field:   field,
			Message: "min must not exceed max",
		}}
	}
	return nil
}

// Validate checks every invariant the simulation depends on and returns all
// violations at once.
func (c *SimulationConfig) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateAtLeast("threads", c.Threads, 1)...)
	errs = append(errs, validateAtLeast("trials", c.Trials, 0)...)
	errs = append(errs, validateAtLeast("tries", c.Tries, 1)...)
	if c.BeamAngle <= -90 || c.BeamAngle >= 90 {
		// tan is undefined at a vertical beam.
		errs = append(errs, ValidationError{
			Field:   "beam_angle",
			Message: "must lie strictly between -90 and 90 degrees",
		})
	}
	errs = append(errs, validateRange("ranges.center_x", c.Ranges.CenterX)...)
	errs = append(errs, validateRange("ranges.center_y", c.Ranges.CenterY)...)
	errs = append(errs, validateRange("ranges.radius", c.Ranges.Radius)...)
	return errs
}
