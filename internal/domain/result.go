package domain

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeValidationFailed
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result is the outcome of a write on a movie. Movie is only set on success
// and Errors only on a validation failure.
type Result struct {
	Outcome Outcome
	Movie   Movie
	Errors  ValidationErrors
}

func Success(movie Movie) Result {
	return Result{
		Outcome: OutcomeSuccess,
		Movie:   movie,
	}
}

func ValidationFailed(errs ValidationErrors) Result {
	return Result{
		Outcome: OutcomeValidationFailed,
		Errors:  errs,
	}
}

func NotFound() Result {
	return Result{
		Outcome: OutcomeNotFound,
	}
}
