// Package bloc contains the event-driven state containers sitting between
// the use cases and the terminal UI. Each container runs a single goroutine
// that consumes intents in order and publishes the resulting states, so the
// UI observes one linear sequence of states per feature.
package bloc

import (
	"context"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/client/repositories/blogs"
	"github.com/Engineerbabu777/blog-app/internal/client/usecases"
	"github.com/Engineerbabu777/blog-app/internal/common"
)

// BlogEvent is a user intent handled by the BlogBloc.
type BlogEvent interface{ isBlogEvent() }

// BlogUpload requests creation of a new blog record.
type BlogUpload struct {
	PosterID string
	Title    string
	Content  string
	Topics   []string
	Image    []byte
}

// BlogFetchAll requests the full blog list.
type BlogFetchAll struct{}

func (BlogUpload) isBlogEvent()   {}
func (BlogFetchAll) isBlogEvent() {}

// BlogState is a point in the blog feature's state sequence.
type BlogState interface{ isBlogState() }

// BlogInitial is the state before any intent has been dispatched.
type BlogInitial struct{}

// BlogLoading is published before every intent is handled, without checking
// what the previous state was.
type BlogLoading struct{}

// BlogFailure carries the message of the failure that ended an intent.
type BlogFailure struct {
	Message string
}

// BlogUploadSuccess carries the stored record of a finished upload.
type BlogUploadSuccess struct {
	Blog *models.Blog
}

// BlogsDisplaySuccess carries the list of a finished fetch.
type BlogsDisplaySuccess struct {
	Blogs []models.Blog
}

func (BlogInitial) isBlogState()         {}
func (BlogLoading) isBlogState()         {}
func (BlogFailure) isBlogState()         {}
func (BlogUploadSuccess) isBlogState()   {}
func (BlogsDisplaySuccess) isBlogState() {}

// BlogBloc turns blog intents into blog states.
type BlogBloc struct {
	upload usecases.UseCase[blogs.UploadParams, *models.Blog]
	getAll usecases.UseCase[usecases.NoParams, []models.Blog]
	events chan BlogEvent
	states chan BlogState
}

func NewBlogBloc(
	upload usecases.UseCase[blogs.UploadParams, *models.Blog],
	getAll usecases.UseCase[usecases.NoParams, []models.Blog],
) *BlogBloc {
	return &BlogBloc{
		upload: upload,
		getAll: getAll,
		events: make(chan BlogEvent),
		states: make(chan BlogState),
	}
}

// Dispatch hands an intent to the worker. It blocks until the worker accepts
// it or the context is done.
func (b *BlogBloc) Dispatch(ctx context.Context, event BlogEvent) error {
	select {
	case b.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// States returns the channel the worker publishes on. Intents are handled one
// at a time, so states arrive in dispatch order.
func (b *BlogBloc) States() <-chan BlogState {
	return b.states
}

// Run consumes intents until the context is done. It closes the state channel
// on exit.
func (b *BlogBloc) Run(ctx context.Context) {
	defer close(b.states)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-b.events:
			if !b.emit(ctx, BlogLoading{}) {
				return
			}
			if !b.emit(ctx, b.handle(ctx, event)) {
				return
			}
		}
	}
}

func (b *BlogBloc) handle(ctx context.Context, event BlogEvent) BlogState {
	switch e := event.(type) {
	case BlogUpload:
		blog, err := b.upload.Call(ctx, blogs.UploadParams{
			PosterID: e.PosterID,
			Title:    e.Title,
			Content:  e.Content,
			Topics:   e.Topics,
			Image:    e.Image,
		})
		if err != nil {
			return BlogFailure{Message: failureMessage(err)}
		}
		return BlogUploadSuccess{Blog: blog}
	case BlogFetchAll:
		list, err := b.getAll.Call(ctx, usecases.NoParams{})
		if err != nil {
			return BlogFailure{Message: failureMessage(err)}
		}
		return BlogsDisplaySuccess{Blogs: list}
	default:
		return BlogFailure{Message: common.DefaultFailureMessage}
	}
}

func (b *BlogBloc) emit(ctx context.Context, state BlogState) bool {
	select {
	case b.states <- state:
		return true
	case <-ctx.Done():
		return false
	}
}

// failureMessage extracts the message a Failure carries, falling back to the
// default text for anything else.
func failureMessage(err error) string {
	return common.FailureFrom(err).Message
}
