package ocr

import (
	"context"
	"errors"
)

type Engine interface {
	Name() string
	Process(ctx context.Context, in Request) (Result, error)
}

type Engines struct {
	Mistral Engine
	Gemini  Engine
}

func (e *Engines) GetEngine(name string) (Engine, error) {
	switch name {
	case "", "mistral":
		return e.Mistral, nil
	case "gemini":
		if e.Gemini == nil {
			return nil, errors.New("gemini engine is not configured; set GEMINI_API_KEY")
		}
		return e.Gemini, nil
	default:
		return nil, errors.New("unknown engine; use 'mistral' or 'gemini'")
	}
}
