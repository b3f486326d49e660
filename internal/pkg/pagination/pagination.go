// Package pagination builds the navigation links shown under paginated
// transaction and agreement lists.
package pagination

import (
	"fmt"
	"strconv"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
)

const (
	PageNamePrevious = "previous"
	PageNameNext     = "next"
)

type Link struct {
	PageName   string `json:"page_name"`
	PageNumber int    `json:"page_number"`
	Href       string `json:"href,omitempty"`
}

// BuildLinks returns the links for the given page of a result set:
// numbered links for the current page and the one after it, a previous
// link when there is an earlier page and a next link when more pages
// remain. A result set that fits on one page gets no links.
func BuildLinks(total, displaySize, page int, baseURL string) []Link {
	if displaySize <= 0 || total <= 0 {
		return nil
	}
	if page < 1 {
		page = 1
	}

	totalPages := (total + displaySize - 1) / displaySize
	if totalPages <= 1 {
		return nil
	}
	if page > totalPages {
		page = totalPages
	}

	var links []Link
	if page > 1 {
		links = append(links, newLink(PageNamePrevious, page-1, displaySize, baseURL))
	}

	lastNumbered := page + 1
	if lastNumbered > totalPages {
		lastNumbered = totalPages
	}
	for p := page; p <= lastNumbered; p++ {
		links = append(links, newLink(strconv.Itoa(p), p, displaySize, baseURL))
	}

	if page < totalPages {
		links = append(links, newLink(PageNameNext, page+1, displaySize, baseURL))
	}
	return links
}

func newLink(pageName string, pageNumber, displaySize int, baseURL string) Link {
	link := Link{PageName: pageName, PageNumber: pageNumber}
	if baseURL != "" {
		link.Href = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, pageNumber, displaySize)
	}
	return link
}
