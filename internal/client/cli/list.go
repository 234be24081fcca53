package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Engineerbabu777/blog-app/internal/client/bloc"
)

// List fetches and prints every post, newest first, one numbered line each.
// The fetched list is kept so Show can resolve a number afterwards.
func (a *App) List(ctx context.Context) error {
	state, err := a.blogResult(ctx, bloc.BlogFetchAll{})
	if err != nil {
		return err
	}

	switch s := state.(type) {
	case bloc.BlogsDisplaySuccess:
		a.lastList = s.Blogs
		if len(s.Blogs) == 0 {
			printlnFn("No posts yet")
			return nil
		}
		for i, blog := range s.Blogs {
			printlnFn(fmt.Sprintf("%d. %s by %s (%s)", i+1, blog.Title, posterLabel(blog), FormatDate(blog.UpdatedAt)))
		}
	case bloc.BlogFailure:
		printlnFn("Error:", s.Message)
	}
	return nil
}

// Show prompts for a list number and renders the full post.
func (a *App) Show(ctx context.Context) error {
	if len(a.lastList) == 0 {
		printlnFn("Run 'list' first")
		return nil
	}

	input, err := getSimpleText(a.reader, "Enter post number", os.Stdout)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(a.lastList) {
		printlnFn("No such post:", input)
		return nil
	}

	blog := a.lastList[n-1]
	printlnFn(blog.Title)
	printlnFn(fmt.Sprintf("%s | %s | %d min read", posterLabel(blog), FormatDate(blog.UpdatedAt), ReadingTime(blog.Content)))
	if len(blog.Topics) > 0 {
		printlnFn("Topics:", joinTopics(blog.Topics))
	}
	if blog.ImageURL != "" {
		printlnFn("Image:", blog.ImageURL)
	}
	printlnFn("")
	printlnFn(blog.Content)
	return nil
}
