package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	prefixClient    = "client"
	prefixApartment = "apt"
	prefixVendor    = "vendor"
	prefixProduct   = "product"
	prefixDelivery  = "delivery"
	prefixPayment   = "payment"
	prefixIssue     = "issue"
	prefixActivity  = "activity"
	prefixAINote    = "note"
)

// idGenerator issues "<prefix>-<millis>" ids. The numeric part never repeats
// within a store: when the clock has not advanced it is bumped past the last one.
// Callers hold the store lock.
type idGenerator struct {
	last int64
	now  func() time.Time
}

func (g *idGenerator) next(prefix string) string {
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}

// observe keeps ids issued by earlier runs from being handed out again.
func (g *idGenerator) observe(id string) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return
	}
	if n, err := strconv.ParseInt(id[i+1:], 10, 64); err == nil && n > g.last {
		g.last = n
	}
}
