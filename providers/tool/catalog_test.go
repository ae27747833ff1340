package tool

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// mockTool is a minimal GenericTool returning a fixed result.
type mockTool struct {
	name   string
	unit   string
	result string
}

func (m *mockTool) ToolInfo() Info {
	return Info{
		Name:        m.name,
		Description: "Mock tool for testing",
		Unit:        m.unit,
	}
}

func (m *mockTool) Call(ctx context.Context, inputJSON string) (string, error) {
	return m.result, nil
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()
	if catalog.Size() != 0 {
		t.Errorf("new catalog should be empty, got size %d", catalog.Size())
	}
}

func TestNewCatalogWithTools(t *testing.T) {
	catalog := NewCatalogWithTools(
		&mockTool{name: "coulomb_force"},
		&mockTool{name: "magnetic_flux"},
	)

	if catalog.Size() != 2 {
		t.Errorf("expected size 2, got %d", catalog.Size())
	}
	for _, name := range []string{"coulomb_force", "magnetic_flux"} {
		if !catalog.Has(name) {
			t.Errorf("catalog should contain %s", name)
		}
	}
}

func TestCatalog_GetCaseInsensitive(t *testing.T) {
	tool := &mockTool{name: "RC_Time_Constant", result: "ok"}
	catalog := NewCatalogWithTools(tool)

	for _, name := range []string{"rc_time_constant", "RC_TIME_CONSTANT", "Rc_Time_Constant"} {
		got, ok := catalog.Get(name)
		if !ok || got != tool {
			t.Errorf("Get(%q) = %v, %v; want the registered tool", name, got, ok)
		}
	}
	if _, ok := catalog.Get("rc_constant"); ok {
		t.Error("Get should fail for an unknown name")
	}
}

func TestCatalog_Remove(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "capacitor_energy"})

	if !catalog.Remove("CAPACITOR_ENERGY") {
		t.Error("Remove should report an existing tool")
	}
	if catalog.Remove("capacitor_energy") {
		t.Error("Remove should report a missing tool")
	}
	if catalog.Size() != 0 {
		t.Errorf("expected empty catalog, got %d", catalog.Size())
	}
}

func TestCatalog_Clear(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "a"}, &mockTool{name: "b"})
	catalog.Clear()
	if catalog.Size() != 0 {
		t.Errorf("expected empty catalog after Clear, got %d", catalog.Size())
	}
}

func TestCatalog_Tools(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "a"})

	tools := catalog.Tools()
	delete(tools, "a")
	if !catalog.Has("a") {
		t.Error("modifying the returned map must not affect the catalog")
	}
}

func TestCatalog_NamesAndInfos(t *testing.T) {
	catalog := NewCatalogWithTools(
		&mockTool{name: "solenoid_inductance", unit: "Henry"},
		&mockTool{name: "Capacitor_Energy", unit: "Joules"},
		&mockTool{name: "magnetic_flux", unit: "Weber"},
	)

	names := catalog.Names()
	want := []string{"capacitor_energy", "magnetic_flux", "solenoid_inductance"}
	if fmt.Sprint(names) != fmt.Sprint(want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}

	infos := catalog.Infos()
	if len(infos) != 3 {
		t.Fatalf("expected 3 infos, got %d", len(infos))
	}
	if infos[0].Name != "Capacitor_Energy" || infos[0].Unit != "Joules" {
		t.Errorf("expected Capacitor_Energy first, got %+v", infos[0])
	}
	if infos[2].Unit != "Henry" {
		t.Errorf("expected solenoid_inductance last, got %+v", infos[2])
	}
}

func TestCatalog_Merge(t *testing.T) {
	original := &mockTool{name: "shared", result: "old"}
	replacement := &mockTool{name: "shared", result: "new"}

	catalog := NewCatalogWithTools(original, &mockTool{name: "left"})
	other := NewCatalogWithTools(replacement, &mockTool{name: "right"})

	catalog.Merge(other)
	catalog.Merge(nil)
	catalog.Merge(catalog)

	if catalog.Size() != 3 {
		t.Errorf("expected 3 tools after merge, got %d", catalog.Size())
	}
	got, _ := catalog.Get("shared")
	if got != replacement {
		t.Error("Merge should replace tools with the same name")
	}
	if other.Size() != 2 {
		t.Errorf("Merge must not modify the source, got size %d", other.Size())
	}
}

func TestCatalog_Clone(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "a"})
	clone := catalog.Clone()

	clone.AddTools(&mockTool{name: "b"})
	clone.Remove("a")

	if !catalog.Has("a") || catalog.Has("b") {
		t.Error("changes to the clone must not affect the original")
	}
}

func TestCatalog_AddToolsReplacesExisting(t *testing.T) {
	v1 := &mockTool{name: "tool1", result: "v1"}
	v2 := &mockTool{name: "TOOL1", result: "v2"}
	catalog := NewCatalogWithTools(v1)

	catalog.AddTools(v2)

	got, _ := catalog.Get("tool1")
	if got != v2 {
		t.Error("AddTools should replace an existing tool")
	}
	if catalog.Size() != 1 {
		t.Errorf("expected 1 tool after replacement, got %d", catalog.Size())
	}
}

func TestCatalog_ThreadSafety(t *testing.T) {
	catalog := NewCatalog()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			catalog.AddTools(&mockTool{name: fmt.Sprintf("tool%d", n%26)})
		}(i)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("tool%d", n%26)
			catalog.Has(name)
			catalog.Get(name)
			catalog.Names()
			catalog.Infos()
		}(i)
	}
	wg.Wait()

	if catalog.Size() != 26 {
		t.Errorf("expected 26 distinct tools, got %d", catalog.Size())
	}
}
