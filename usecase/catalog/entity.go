package catalog

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/usecase"
)

// entity binds one store collection to the dispatcher.
type entity[T any, P any] struct {
	name    string
	id      func(T) string
	add     func(context.Context, T) (T, error)
	update  func(context.Context, string, P) (T, bool, error)
	remove  func(context.Context, string) bool
	get     func(string) (T, bool)
	list    func() []T
	lookups map[string]func(string) []T
}

func (f ListFilter) fields() map[string]string {
	out := map[string]string{}
	for key, value := range map[string]string{
		"apartment_id": f.ApartmentID,
		"client_id":    f.ClientID,
		"product_id":   f.ProductID,
		"vendor":       f.Vendor,
		"type":         f.Type,
	} {
		if value != "" {
			out[key] = value
		}
	}
	return out
}

func register[T any, P any](d *usecase.Dispatcher, logger *zap.Logger, e entity[T, P]) {
	d.RegisterQuery(Name(e.name, OpList), func(ctx context.Context, params interface{}) (interface{}, error) {
		filter, _ := params.(ListFilter)
		return e.filtered(filter)
	})

	d.RegisterQuery(Name(e.name, OpGet), func(ctx context.Context, params interface{}) (interface{}, error) {
		id, _ := params.(string)
		record, ok := e.get(id)
		if !ok {
			return nil, notFound(e.name, id)
		}
		return record, nil
	})

	d.RegisterCommand(Name(e.name, OpCreate), func(ctx context.Context, payload interface{}) (interface{}, error) {
		m, err := mutation(payload)
		if err != nil {
			return nil, err
		}
		var record T
		if err := decode(m.Body, &record); err != nil {
			return nil, err
		}
		created, err := e.add(ctx, record)
		if err != nil {
			return nil, err
		}
		logger.Debug("record created", zap.String("collection", e.name), zap.String("id", e.id(created)))
		return created, nil
	})

	d.RegisterCommand(Name(e.name, OpUpdate), func(ctx context.Context, payload interface{}) (interface{}, error) {
		m, err := mutation(payload)
		if err != nil {
			return nil, err
		}
		var patch P
		if err := decode(m.Body, &patch); err != nil {
			return nil, err
		}
		updated, found, err := e.update(ctx, m.ID, patch)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, notFound(e.name, m.ID)
		}
		return updated, nil
	})

	d.RegisterCommand(Name(e.name, OpDelete), func(ctx context.Context, payload interface{}) (interface{}, error) {
		id, _ := payload.(string)
		return DeleteResult{ID: id, Deleted: e.remove(ctx, id)}, nil
	})
}

// filtered resolves every set filter through the collection's lookups and keeps
// the records present in all of them, in the order of the first lookup.
func (e entity[T, P]) filtered(filter ListFilter) ([]T, error) {
	fields := filter.fields()
	if len(fields) == 0 {
		return e.list(), nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		if _, ok := e.lookups[key]; !ok {
			return nil, domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("%s cannot be filtered by %s", e.name, key))
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := e.lookups[keys[0]](fields[keys[0]])
	for _, key := range keys[1:] {
		keep := map[string]bool{}
		for _, record := range e.lookups[key](fields[key]) {
			keep[e.id(record)] = true
		}
		narrowed := result[:0]
		for _, record := range result {
			if keep[e.id(record)] {
				narrowed = append(narrowed, record)
			}
		}
		result = narrowed
	}
	return result, nil
}
