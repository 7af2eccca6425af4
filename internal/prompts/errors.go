package prompts

import "errors"

// ErrInvalidStage reports a stage name that is not one of Stages().
var ErrInvalidStage = errors.New("stage must be extract_problem, extract_solution, extract_combined, or analyze")
