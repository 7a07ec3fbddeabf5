package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/naija-assistant/internal/assistant/domain"
)

// Service runs one message through classification, resolution, execution and
// composition.
type Service struct {
	nlu  Classifier
	exec *Executor
	log  *slog.Logger
}

func NewService(nlu Classifier, gw Gateway, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		nlu:  nlu,
		exec: NewExecutor(gw, log),
		log:  log,
	}
}

// Handle always yields a response. An NLU failure, including a panic inside
// the classifier, produces the generic error message with intent "unknown"
// and no entities.
func (s *Service) Handle(ctx context.Context, userID, text string) domain.Response {
	c, err := s.classify(ctx, text)
	if err != nil {
		s.log.ErrorContext(ctx, "message classification failed",
			slog.String("user_id", userID),
			slog.Any("err", err),
		)
		return Compose("", nil, domain.Outcome{Message: GenericErrorMessage})
	}

	req := domain.Request{UserID: userID, RawIntent: c.Intent, Entities: c.Entities}
	action := Resolve(c.Intent, c.Entities)
	out := s.exec.Execute(ctx, req, action)

	s.log.InfoContext(ctx, "assistant request handled",
		slog.String("user_id", userID),
		slog.String("intent", c.Intent),
		slog.String("action", action.Name()),
		slog.Bool("navigate", out.Navigation != nil),
	)
	return Compose(c.Intent, c.Entities, out)
}

func (s *Service) classify(ctx context.Context, text string) (c domain.Classification, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrClassification, r)
		}
	}()
	return s.nlu.Classify(ctx, strings.TrimSpace(text))
}
