package job

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const provisionQueueSize = 64

// 登録直後のセッション確立を待ってから作成する
const provisionDelay = 100 * time.Millisecond

// CollectionEnsurer lazily creates a user's remote collection.
type CollectionEnsurer interface {
	EnsureCollection(ctx context.Context, email, displayName string) (string, error)
}

type provisionRequest struct {
	email       string
	displayName string
}

// ProvisionWorker provisions remote collections in the background.
// Registration enqueues the user; the worker creates the collection
// shortly after. A failed attempt is only logged: the collection is
// re-created lazily on the user's first article write.
type ProvisionWorker struct {
	ensurer CollectionEnsurer
	queue   chan provisionRequest
	logger  *slog.Logger
	wg      sync.WaitGroup
}

func NewProvisionWorker(ensurer CollectionEnsurer, logger *slog.Logger) *ProvisionWorker {
	return &ProvisionWorker{
		ensurer: ensurer,
		queue:   make(chan provisionRequest, provisionQueueSize),
		logger:  logger,
	}
}

// Enqueue schedules background provisioning for a user. Never blocks;
// a full queue drops the request (first write provisions lazily).
func (w *ProvisionWorker) Enqueue(email, displayName string) {
	select {
	case w.queue <- provisionRequest{email: email, displayName: displayName}:
	default:
		w.logger.Warn("provision queue full, dropping request", "email", email)
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled.
func (w *ProvisionWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *ProvisionWorker) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("provision worker stopping")
			return
		case req := <-w.queue:
			select {
			case <-ctx.Done():
				return
			case <-time.After(provisionDelay):
			}
			w.provision(ctx, req)
		}
	}
}

func (w *ProvisionWorker) provision(ctx context.Context, req provisionRequest) {
	collectionID, err := w.ensurer.EnsureCollection(ctx, req.email, req.displayName)
	if err != nil {
		w.logger.Error("background provisioning failed",
			"email", req.email,
			"error", err)
		return
	}
	w.logger.Info("collection provisioned",
		"email", req.email,
		"collection_id", collectionID)
}

// Shutdown blocks until the worker goroutine exits.
func (w *ProvisionWorker) Shutdown() {
	w.wg.Wait()
}
