package app

import (
	"context"
	"testing"

	"aspectlock/internal/config"
	"aspectlock/internal/platform"
	"aspectlock/internal/testutils"
	"aspectlock/pkg/aspectlock"
)

// fakeWindowAPI simulates a host window for lifecycle tests. findCalls lets
// tests make the window appear only after a few locator attempts.
type fakeWindowAPI struct {
	mainWindow  platform.Handle
	hiddenUntil int
	findCalls   int
	attachCount int
	detachCount int
}

func (f *fakeWindowAPI) FindMainWindow() platform.Handle {
	f.findCalls++
	if f.findCalls <= f.hiddenUntil {
		return 0
	}
	return f.mainWindow
}

func (f *fakeWindowAPI) Subclass(h platform.Handle, id uintptr, handler platform.SizingHandler) error {
	f.attachCount++
	return nil
}

func (f *fakeWindowAPI) RemoveSubclass(h platform.Handle, id uintptr) {
	f.detachCount++
}

func newTestApp(api *fakeWindowAPI) *App {
	logger := &testutils.RecordingLogger{}
	cfg := config.Default()
	cfg.InstallAttempts = 5
	cfg.InstallDelayMS = 1
	return NewApp(cfg, aspectlock.New(api, logger), logger)
}

func TestApp_DomReadyInstallsLock(t *testing.T) {
	api := &fakeWindowAPI{mainWindow: platform.Handle(0x3000)}
	a := newTestApp(api)

	a.Startup(context.Background())
	a.DomReady(context.Background())

	status := a.Status()
	if !status.Installed {
		t.Error("lock should be installed after DomReady")
	}
	if status.Label != "16:9" {
		t.Errorf("Label = %q, want 16:9", status.Label)
	}
	if api.attachCount != 1 {
		t.Errorf("attachCount = %d, want 1", api.attachCount)
	}
}

func TestApp_DomReadyRetriesUntilWindowAppears(t *testing.T) {
	api := &fakeWindowAPI{mainWindow: platform.Handle(0x3000), hiddenUntil: 3}
	a := newTestApp(api)

	a.Startup(context.Background())
	a.DomReady(context.Background())

	if !a.Status().Installed {
		t.Error("lock should be installed once the window became visible")
	}
	if api.findCalls != 4 {
		t.Errorf("findCalls = %d, want 4 (three misses, then the window)", api.findCalls)
	}
}

func TestApp_DomReadyGivesUpGracefully(t *testing.T) {
	api := &fakeWindowAPI{mainWindow: 0, hiddenUntil: 1 << 30}
	a := newTestApp(api)

	a.Startup(context.Background())
	a.DomReady(context.Background()) // must not panic

	if a.Status().Installed {
		t.Error("lock should not report installed when no window ever appeared")
	}
}

func TestApp_SetRatio(t *testing.T) {
	api := &fakeWindowAPI{mainWindow: platform.Handle(0x3000)}
	a := newTestApp(api)
	a.DomReady(context.Background())

	status, err := a.SetRatio(21, 9)
	if err != nil {
		t.Fatalf("SetRatio() unexpected error: %v", err)
	}
	if status.Label != "21:9" {
		t.Errorf("Label = %q, want 21:9", status.Label)
	}
	if !status.Installed {
		t.Error("lock should be installed after SetRatio")
	}
	if api.detachCount != 1 || api.attachCount != 2 {
		t.Errorf("attach/detach = %d/%d, want 2/1", api.attachCount, api.detachCount)
	}
}

func TestApp_SetRatioRejectsInvalid(t *testing.T) {
	api := &fakeWindowAPI{mainWindow: platform.Handle(0x3000)}
	a := newTestApp(api)
	a.DomReady(context.Background())

	status, err := a.SetRatio(0, 9)
	if err == nil {
		t.Fatal("SetRatio(0, 9) expected error")
	}
	if !status.Installed {
		t.Error("existing lock must survive a rejected ratio")
	}
	if status.Label != "16:9" {
		t.Errorf("Label = %q, want unchanged 16:9", status.Label)
	}
	if api.detachCount != 0 {
		t.Errorf("detachCount = %d, want 0 (rejected before uninstall)", api.detachCount)
	}
}

func TestApp_UnlockAndRelock(t *testing.T) {
	api := &fakeWindowAPI{mainWindow: platform.Handle(0x3000)}
	a := newTestApp(api)
	a.DomReady(context.Background())

	status := a.Unlock()
	if status.Installed {
		t.Error("Unlock() should detach the lock")
	}

	status, err := a.Relock()
	if err != nil {
		t.Fatalf("Relock() unexpected error: %v", err)
	}
	if !status.Installed {
		t.Error("Relock() should reattach the lock")
	}
	if status.Label != "16:9" {
		t.Errorf("Label = %q, want the last requested 16:9", status.Label)
	}
}

func TestApp_ShutdownUninstalls(t *testing.T) {
	api := &fakeWindowAPI{mainWindow: platform.Handle(0x3000)}
	a := newTestApp(api)
	a.DomReady(context.Background())

	a.Shutdown(context.Background())

	if a.Status().Installed {
		t.Error("Shutdown() should uninstall the lock")
	}
	if api.detachCount != 1 {
		t.Errorf("detachCount = %d, want 1", api.detachCount)
	}
}

func TestApp_BeforeCloseNeverPrevents(t *testing.T) {
	a := newTestApp(&fakeWindowAPI{mainWindow: platform.Handle(0x3000)})
	if a.BeforeClose(context.Background()) {
		t.Error("BeforeClose() = true, want false")
	}
}
