package inspect

import (
	"reflect"
	"time"

	"github.com/go-drift/inspect/pkg/ambient"
	"github.com/go-drift/inspect/pkg/core"
	"github.com/go-drift/inspect/pkg/errors"
)

// buildContext serves DependOnInherited from the envelope's scope and
// records every lookup it could not serve.
type buildContext struct {
	scope   *ambient.Scope
	missing []string
}

func (b *buildContext) DependOnInherited(inheritedType reflect.Type, aspect any) any {
	key := inheritedType.String()
	if v, ok := b.scope.Resolve(key); ok {
		return v
	}
	for _, k := range b.missing {
		if k == key {
			return nil
		}
	}
	b.missing = append(b.missing, key)
	return nil
}

type widgetAttacher interface {
	AttachWidget(w core.StatefulWidget)
}

// build evaluates a custom widget. Ambient fields are filled from the scope
// first; a widget needing anything the scope lacks fails with a
// MissingAmbientError naming all of it. Inherited lookups that miss are
// tolerated while Build copes with them; when Build then panics or returns
// nothing, the misses are returned as a MissingAmbientError. Any other
// panic is reported and returned as a BuildError.
func (c *Classifier) build(env Envelope) (body core.Widget, err error) {
	name := c.acc.FullTypeName(env.Node)
	filled, err := c.injector.Inject(env.Node, env.Ambient)
	if err != nil {
		return nil, err
	}
	ctx := &buildContext{scope: env.Ambient}
	missing := func() error {
		return &errors.MissingAmbientError{View: c.acc.TypeName(env.Node), Keys: ctx.missing}
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		body = nil
		if len(ctx.missing) > 0 {
			err = missing()
			return
		}
		buildErr := &errors.BuildError{
			Widget:     name,
			Recovered:  r,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		}
		errors.ReportBuildError(buildErr)
		err = buildErr
	}()

	switch w := filled.(type) {
	case core.StatelessWidget:
		body = w.Build(ctx)
	case core.StatefulWidget:
		state := w.CreateState()
		if state == nil {
			return nil, &errors.BuildError{Widget: name, Err: &errors.ViewNotFoundError{Parent: name, Name: "state"}}
		}
		if a, ok := state.(widgetAttacher); ok {
			a.AttachWidget(w)
		}
		if i, ok := state.(core.Initializer); ok {
			i.InitState()
		}
		body = state.Build(ctx)
	default:
		return nil, &errors.NotSupportedError{Message: name + " does not build a body"}
	}

	if isNil(body) {
		if len(ctx.missing) > 0 {
			return nil, missing()
		}
		return nil, &errors.ViewNotFoundError{Parent: c.acc.TypeName(env.Node), Name: "body"}
	}
	return body, nil
}
