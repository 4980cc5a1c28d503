package classification

import "context"

//go:generate mockery --name=Classifier --dir=. --output=../../../mocks --filename=classifier_mock.go --case=underscore --with-expecter
type Classifier interface {
	// Name identifies the backend in logs, metrics and events.
	Name() string
	Classify(ctx context.Context, text string) (*Result, error)
}
