package core

// AnyWidget is a type-erased widget. The wrapped widget's static type is
// lost; only its runtime type remains reachable.
type AnyWidget struct {
	storage anyWidgetStorageBase
}

type anyWidgetStorageBase interface {
	erasedWidget() Widget
}

type anyWidgetStorage[W Widget] struct {
	view W
}

func (s *anyWidgetStorage[W]) erasedWidget() Widget { return s.view }

// AnyWidgetOf erases the static type of w.
func AnyWidgetOf[W Widget](w W) AnyWidget {
	return AnyWidget{storage: &anyWidgetStorage[W]{view: w}}
}

// Key returns the wrapped widget's key.
func (a AnyWidget) Key() any {
	if a.storage == nil {
		return nil
	}
	if w := a.storage.erasedWidget(); w != nil {
		return w.Key()
	}
	return nil
}
