package cli

import (
	"context"
	"os"

	"github.com/Engineerbabu777/blog-app/internal/client/bloc"
	"github.com/Engineerbabu777/blog-app/internal/imagex"
)

// readFile is a test seam for loading the post image from disk.
var readFile = os.ReadFile

// AddPost interactively collects a new post: title, body, topics and a cover
// image path. The image is sniffed before anything is sent, so an unreadable
// or non-image file fails locally.
func (a *App) AddPost(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}

	topics, err := GetTopics(a.reader, "Enter topics (comma separated)", os.Stdout)
	if err != nil {
		return err
	}

	imagePath, err := getSimpleText(a.reader, "Enter image path", os.Stdout)
	if err != nil {
		return err
	}

	image, err := readFile(imagePath)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if _, err := imagex.Sniff(image); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	state, err := a.blogResult(ctx, bloc.BlogUpload{
		PosterID: a.session.User.ID,
		Title:    title,
		Content:  content,
		Topics:   topics,
		Image:    image,
	})
	if err != nil {
		return err
	}

	switch s := state.(type) {
	case bloc.BlogUploadSuccess:
		printlnFn("Posted:", s.Blog.ID)
	case bloc.BlogFailure:
		printlnFn("Error:", s.Message)
	}
	return nil
}
