package transport

import (
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
)

// ListQuery holds the filters accepted by collection list endpoints.
type ListQuery struct {
	ApartmentID string
	ClientID    string
	ProductID   string
	Vendor      string
	Type        string
}

// SearchQuery holds the parameters of the global search endpoint.
type SearchQuery struct {
	Q     string
	Limit int
}

func ParseListQuery(args *fasthttp.Args) ListQuery {
	return ListQuery{
		ApartmentID: arg(args, "apartment_id"),
		ClientID:    arg(args, "client_id"),
		ProductID:   arg(args, "product_id"),
		Vendor:      arg(args, "vendor"),
		Type:        arg(args, "type"),
	}
}

func ParseSearchQuery(args *fasthttp.Args) SearchQuery {
	q := SearchQuery{Q: arg(args, "q")}
	if limit, err := strconv.Atoi(arg(args, "limit")); err == nil && limit > 0 {
		q.Limit = limit
	}
	return q
}

func arg(args *fasthttp.Args, key string) string {
	return strings.TrimSpace(string(args.Peek(key)))
}
