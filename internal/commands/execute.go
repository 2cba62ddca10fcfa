package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Calculate func(CalculateArgs) (Result, error)
	Copy      func(PickArgs) (Result, error)
	Share     func(PickArgs) (Result, error)
	Alarm     func(PickArgs) (Result, error)
	Format    func(FormatArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeWake, TypeBed, TypeNow:
		if handlers.Calculate == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "calculate handler not configured"}
		}
		return handlers.Calculate(*cmd.Calculate)
	case TypeCopy:
		if handlers.Copy == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "copy handler not configured"}
		}
		return handlers.Copy(*cmd.Pick)
	case TypeShare:
		if handlers.Share == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "share handler not configured"}
		}
		return handlers.Share(*cmd.Pick)
	case TypeAlarm:
		if handlers.Alarm == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "alarm handler not configured"}
		}
		return handlers.Alarm(*cmd.Pick)
	case TypeFormat:
		if handlers.Format == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "format handler not configured"}
		}
		return handlers.Format(*cmd.Format)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
