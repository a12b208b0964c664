package docloud

import (
	"context"

	"github.com/digitalocean/godo"
)

// PageFunc fetches a single page of a listing. The godo response carries the
// pagination links used to decide whether another page follows.
type PageFunc[T any] func(ctx context.Context, opt *godo.ListOptions) ([]T, *godo.Response, error)

// CollectAll materializes a paginated listing into one ordered slice.
//
// Pages are fetched in order and concatenated without de-duplication. Any
// page error aborts the walk and discards items accumulated so far; the
// listing is all-or-nothing from the caller's perspective. An empty listing
// is a valid result, not an error.
func CollectAll[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	opt := &godo.ListOptions{Page: 1, PerPage: pageSize}

	var all []T
	for {
		items, resp, err := fetch(ctx, opt)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if resp == nil || resp.Links == nil || resp.Links.IsLastPage() {
			return all, nil
		}
		opt.Page++
	}
}
