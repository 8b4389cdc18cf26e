package categorizer

import (
	"context"
	"errors"
	"strings"
	"time"

	"askbudget/budget-buddy/internal/logging"
	"askbudget/budget-buddy/internal/models"
	"askbudget/budget-buddy/internal/parsererror"
	"askbudget/budget-buddy/internal/store"
)

// ErrUnrecognizedLabel is returned when the service answers outside the known label set.
var ErrUnrecognizedLabel = errors.New("response is not a known category")

// AIStrategy asks the classification service and caches a usable answer.
type AIStrategy struct {
	service ClassificationService
	cache   store.MappingStore
	timeout time.Duration
	logger  logging.Logger
}

// NewAIStrategy creates a new AIStrategy. A nil service makes the strategy
// always decline; a zero timeout leaves the caller's deadline in charge.
func NewAIStrategy(service ClassificationService, cache store.MappingStore, timeout time.Duration, logger logging.Logger) *AIStrategy {
	return &AIStrategy{
		service: service,
		cache:   cache,
		timeout: timeout,
		logger:  logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return StrategyAI
}

// Categorize implements CategorizationStrategy. Service errors, timeouts and
// unusable answers all decline so the rule layer can answer instead.
func (s *AIStrategy) Categorize(ctx context.Context, tx models.Transaction) (string, bool, error) {
	log := s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldDescription, Value: tx.Description},
	)

	if s.service == nil {
		log.Debug("Classification service not available, skipping AI categorization")
		return "", false, nil
	}
	if strings.TrimSpace(tx.Description) == "" {
		return "", false, nil
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := s.classify(callCtx, BuildPrompt(tx.Description, tx.TxnType))
	if err != nil {
		cerr := &parsererror.ClassificationError{Description: tx.Description, Strategy: s.Name(), Err: err}
		log.WithError(err).Warn("AI categorization failed, falling back",
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
		return "", false, cerr
	}

	category, ok := models.ParseCategory(NormalizeResponse(response))
	if !ok {
		log.Debug("AI returned unusable category",
			logging.Field{Key: "ai_response", Value: response})
		return "", false, &parsererror.ClassificationError{Description: tx.Description, Strategy: s.Name(), Err: ErrUnrecognizedLabel}
	}

	log.Debug("Transaction categorized using AI",
		logging.Field{Key: logging.FieldCategory, Value: string(category)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	cacheResult(s.cache, s.logger, s.Name(), tx.Description, string(category))
	return string(category), true, nil
}

type classifyResult struct {
	response string
	err      error
}

// classify returns when the service answers or ctx is done, whichever comes first.
func (s *AIStrategy) classify(ctx context.Context, prompt string) (string, error) {
	done := make(chan classifyResult, 1)
	go func() {
		response, err := s.service.Classify(ctx, prompt)
		done <- classifyResult{response: response, err: err}
	}()

	select {
	case r := <-done:
		return r.response, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
