package inspector

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/core/event"
)

// Inspector gives debug tooling a read/poke view of a live world. All calls
// must run on the game loop goroutine; handlers already do.
type Inspector struct {
	world *ecs.World
	bus   *event.Bus
}

func New(world *ecs.World, bus *event.Bus) *Inspector {
	return &Inspector{world: world, bus: bus}
}

// EntityRow is one line of an entity listing.
type EntityRow struct {
	ID         ecs.EntityID
	Components []string
}

// Entities lists live entities, oldest index first. A non-empty filter keeps
// only entities holding that component. limit > 0 caps the rows returned;
// the total match count is reported either way.
func (in *Inspector) Entities(filter string, limit int) ([]EntityRow, int, error) {
	var filterStore ecs.Store
	if filter != "" {
		s, ok := in.world.Registry().Lookup(filter)
		if !ok {
			return nil, 0, fmt.Errorf("unknown component %q", filter)
		}
		filterStore = s
	}

	rows := make([]EntityRow, 0, 64)
	total := 0
	in.world.Pool().EachAlive(func(id ecs.EntityID) {
		if filterStore != nil && !filterStore.Has(id) {
			return
		}
		total++
		if limit > 0 && len(rows) >= limit {
			return
		}
		rows = append(rows, EntityRow{ID: id, Components: in.componentNames(id)})
	})
	return rows, total, nil
}

func (in *Inspector) componentNames(id ecs.EntityID) []string {
	var names []string
	for _, s := range in.world.Registry().Stores() {
		if s.Has(id) {
			names = append(names, s.ComponentName())
		}
	}
	sort.Strings(names)
	return names
}

// FieldInfo is one struct field of a component, rendered for display.
type FieldInfo struct {
	Name  string
	Type  string
	Value string
}

// ComponentDump is one component attached to an entity.
type ComponentDump struct {
	Name   string
	Fields []FieldInfo
}

// EntityDetail is the full reflective dump of one entity.
type EntityDetail struct {
	ID         ecs.EntityID
	Components []ComponentDump
}

// Detail dumps every component of the entity field by field.
func (in *Inspector) Detail(id ecs.EntityID) (EntityDetail, error) {
	if !in.world.Alive(id) {
		return EntityDetail{}, fmt.Errorf("entity %d:%d not alive", id.Index(), id.Generation())
	}

	detail := EntityDetail{ID: id}
	for _, s := range in.world.Registry().Stores() {
		v, ok := s.Value(id)
		if !ok {
			continue
		}
		detail.Components = append(detail.Components, ComponentDump{
			Name:   s.ComponentName(),
			Fields: dumpFields(v),
		})
	}
	sort.Slice(detail.Components, func(i, j int) bool {
		return detail.Components[i].Name < detail.Components[j].Name
	})
	return detail, nil
}

func dumpFields(component any) []FieldInfo {
	rv := reflect.ValueOf(component)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return []FieldInfo{{Name: "value", Type: rv.Type().String(), Value: fmt.Sprintf("%v", rv.Interface())}}
	}

	fields := make([]FieldInfo, 0, rv.NumField())
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, FieldInfo{
			Name:  f.Name,
			Type:  f.Type.String(),
			Value: fmt.Sprintf("%v", rv.Field(i).Interface()),
		})
	}
	return fields
}

// ComponentTypeInfo summarizes one registered component store.
type ComponentTypeInfo struct {
	Name  string
	Count int
}

// ComponentTypes lists all registered component stores with live counts,
// sorted by name.
func (in *Inspector) ComponentTypes() []ComponentTypeInfo {
	stores := in.world.Registry().Stores()
	out := make([]ComponentTypeInfo, 0, len(stores))
	for _, s := range stores {
		out = append(out, ComponentTypeInfo{Name: s.ComponentName(), Count: s.Len()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ResourceInfo is one world resource rendered for display.
type ResourceInfo struct {
	Name  string
	Value string
}

// ResourceList lists world resources sorted by type name.
func (in *Inspector) ResourceList() []ResourceInfo {
	out := make([]ResourceInfo, 0, in.world.Resources().Len())
	in.world.Resources().Each(func(name string, value any) {
		rv := reflect.ValueOf(value)
		for rv.Kind() == reflect.Pointer && !rv.IsNil() {
			rv = rv.Elem()
		}
		out = append(out, ResourceInfo{Name: name, Value: fmt.Sprintf("%+v", rv.Interface())})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// EventStats reports per-type event emit counts.
func (in *Inspector) EventStats() []event.Stat {
	return in.bus.Stats()
}

// SetField writes a scalar component field on a live entity. Supported kinds:
// bool, integers, floats, string.
func (in *Inspector) SetField(id ecs.EntityID, component, field, value string) error {
	if !in.world.Alive(id) {
		return fmt.Errorf("entity %d:%d not alive", id.Index(), id.Generation())
	}
	store, ok := in.world.Registry().Lookup(component)
	if !ok {
		return fmt.Errorf("unknown component %q", component)
	}
	v, ok := store.Value(id)
	if !ok {
		return fmt.Errorf("entity %d:%d has no %s", id.Index(), id.Generation(), component)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("component %s is not a struct", component)
	}
	fv := rv.FieldByName(field)
	if !fv.IsValid() {
		return fmt.Errorf("component %s has no field %q", component, field)
	}
	if !fv.CanSet() {
		return fmt.Errorf("field %s.%s is not settable", component, field)
	}

	switch fv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse %q as bool: %w", value, err)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %q as int: %w", value, err)
		}
		if fv.OverflowInt(n) {
			return fmt.Errorf("%d overflows %s", n, fv.Type())
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %q as uint: %w", value, err)
		}
		if fv.OverflowUint(n) {
			return fmt.Errorf("%d overflows %s", n, fv.Type())
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parse %q as float: %w", value, err)
		}
		fv.SetFloat(f)
	case reflect.String:
		fv.SetString(value)
	default:
		return fmt.Errorf("field %s.%s has unsupported kind %s", component, field, fv.Kind())
	}
	return nil
}
