package view

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"

	tui "github.com/rrr-registry/rrr-tui"
	"github.com/rrr-registry/rrr-tui/internal/layout"
	"github.com/rrr-registry/rrr-tui/internal/registry"
)

// newTestRegistry writes a registry with a single root record and returns
// it opened.
func newTestRegistry(t *testing.T, rootData []byte) *registry.Registry {
	t.Helper()
	dir := t.TempDir()

	cfg := registry.Config{
		Name:    "test registry",
		Version: 1,
		Hash: registry.HashConfig{
			Algorithm:           registry.HashAlgorithmBlake2b,
			OutputLengthInBytes: 32,
		},
		KDF: registry.KDFConfig{
			SuccessionNonceLengthInBytes: 32,
			RootPredecessorNonce:         []byte("root-nonce"),
		},
	}
	raw, err := cbor.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshaling config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, registry.ConfigFileName), raw, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	reg, err := registry.Open(dir)
	if err != nil {
		t.Fatalf("opening registry: %v", err)
	}
	writeTestRecord(t, reg, nil, registry.RootRecordName, 0, rootData)
	return reg
}

// writeTestRecord stores one record version under the key derived from
// parent (nil for the root) and name, returning the hashed key.
func writeTestRecord(t *testing.T, reg *registry.Registry, parent registry.HashedRecordKey, name registry.RecordName, version uint64, data []byte) registry.HashedRecordKey {
	t.Helper()
	cfg := reg.Config()

	var nonce registry.SuccessionNonce
	if len(parent) > 0 {
		derived, err := parent.DeriveSuccessionNonce(cfg.KDF)
		if err != nil {
			t.Fatalf("deriving nonce: %v", err)
		}
		nonce = derived
	} else {
		nonce = registry.SuccessionNonce(cfg.KDF.RootPredecessorNonce)
	}
	hashed, err := registry.RecordKey{PredecessorNonce: nonce, Name: name}.Hash(cfg.Hash)
	if err != nil {
		t.Fatalf("hashing key: %v", err)
	}

	raw, err := cbor.Marshal(map[string]any{
		"metadata": map[any]any{"title": "Test"},
		"data":     data,
	})
	if err != nil {
		t.Fatalf("marshaling record: %v", err)
	}
	recordDir := filepath.Join(reg.Dir(), "records", hex.EncodeToString(hashed))
	if err := os.MkdirAll(recordDir, 0o755); err != nil {
		t.Fatalf("creating record dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(recordDir, strconv.FormatUint(version, 10)), raw, 0o644); err != nil {
		t.Fatalf("writing record: %v", err)
	}
	return hashed
}

// awaitBroadcast waits for the background lookup's posted action.
func awaitBroadcast(t *testing.T, ch <-chan tui.Action) tui.Message {
	t.Helper()
	select {
	case action := <-ch:
		broadcast, ok := action.(tui.BroadcastAction)
		if !ok {
			t.Fatalf("posted action = %T, want BroadcastAction", action)
		}
		return broadcast.Message
	case <-time.After(5 * time.Second):
		t.Fatalf("no action posted")
		return nil
	}
}

func newTestPaneOpen(t *testing.T, reg *registry.Registry) (*PaneOpen, *mainState, chan tui.Action) {
	t.Helper()
	state := &mainState{registry: reg}
	p := NewPaneOpen(tui.NewIDAllocator(), layout.DefaultStyle(), state)
	ch := make(chan tui.Action, 4)
	p.SetPoster(func(action tui.Action) { ch <- action })
	return p, state, ch
}

func TestPaneOpen_OpenRootFindsRecord(t *testing.T) {
	reg := newTestRegistry(t, []byte("root content"))
	p, _, ch := newTestPaneOpen(t, reg)

	p.OpenRoot()

	msg, ok := awaitBroadcast(t, ch).(RecordOpenMessage)
	if !ok {
		t.Fatalf("message is not RecordOpenMessage")
	}
	if msg.Record == nil {
		t.Fatalf("root record not found")
	}
	if got := string(msg.Record.Data); got != "root content" {
		t.Errorf("data = %q, want %q", got, "root content")
	}
	if msg.Name != "<root>" {
		t.Errorf("name = %q, want <root>", msg.Name)
	}
}

func TestPaneOpen_EnterSearchesTypedName(t *testing.T) {
	reg := newTestRegistry(t, []byte("root"))
	p, state, ch := newTestPaneOpen(t, reg)

	// Open the root first so the typed name resolves as its successor.
	p.OpenRoot()
	rootMsg := awaitBroadcast(t, ch).(RecordOpenMessage)
	state.openedKey = rootMsg.HashedKey
	p.Update(rootMsg)

	wantKey := writeTestRecord(t, reg, state.openedKey, registry.RecordName("child"), 0, []byte("child content"))

	p.input.SetText("child")
	result, err := p.HandleEvent(key(tui.KeyEnter))
	if err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if !result.Absorb {
		t.Fatalf("enter not absorbed by the form")
	}

	msg := awaitBroadcast(t, ch).(RecordOpenMessage)
	if msg.Record == nil {
		t.Fatalf("child record not found")
	}
	if string(msg.HashedKey) != string(wantKey) {
		t.Errorf("hashed key mismatch")
	}
	if got := string(msg.Record.Data); got != "child content" {
		t.Errorf("data = %q, want %q", got, "child content")
	}
}

func TestPaneOpen_MissingRecordReportsNotFound(t *testing.T) {
	reg := newTestRegistry(t, []byte("root"))
	p, _, ch := newTestPaneOpen(t, reg)

	p.input.SetText("no such record")
	p.HandleEvent(key(tui.KeyEnter))

	msg := awaitBroadcast(t, ch).(RecordOpenMessage)
	if msg.Record != nil {
		t.Fatalf("unexpected record for unknown name")
	}

	p.Update(msg)
	if got := p.status.Text(); got != "Record not found" {
		t.Errorf("status = %q, want %q", got, "Record not found")
	}
	if p.searching {
		t.Errorf("still searching after the verdict")
	}
}

func TestPaneOpen_FoundResetsInput(t *testing.T) {
	reg := newTestRegistry(t, []byte("root"))
	p, _, ch := newTestPaneOpen(t, reg)

	p.input.SetText("")
	p.HandleEvent(key(tui.KeyEnter)) // empty name is the root record

	msg := awaitBroadcast(t, ch).(RecordOpenMessage)
	if msg.Record == nil {
		t.Fatalf("root record not found")
	}

	p.input.SetText("leftover")
	p.Update(msg)
	if got := p.status.Text(); got != "Record found" {
		t.Errorf("status = %q, want %q", got, "Record found")
	}
	if got := p.input.Text(); got != "" {
		t.Errorf("input = %q, want cleared", got)
	}
}

func TestPaneOpen_InvalidHexNameShowsError(t *testing.T) {
	reg := newTestRegistry(t, []byte("root"))
	p, _, ch := newTestPaneOpen(t, reg)

	p.encoding.checked = 1
	p.input.SetText("zz")
	p.HandleEvent(key(tui.KeyEnter))

	select {
	case action := <-ch:
		t.Fatalf("unexpected posted action %T", action)
	case <-time.After(50 * time.Millisecond):
	}
	if p.status.Text() == "" {
		t.Errorf("no error shown for invalid hex")
	}
	if p.searching {
		t.Errorf("searching despite invalid input")
	}
}

func TestPaneOpen_EncryptedIsRejected(t *testing.T) {
	reg := newTestRegistry(t, []byte("root"))
	p, _, _ := newTestPaneOpen(t, reg)

	p.encrypted.SetChecked(true)
	p.HandleEvent(key(tui.KeyEnter))

	if got := p.status.Text(); got != "encrypted records are not supported" {
		t.Errorf("status = %q", got)
	}
}

func TestPaneOpen_SearchButtonConfirms(t *testing.T) {
	reg := newTestRegistry(t, []byte("root"))
	p, _, ch := newTestPaneOpen(t, reg)

	if _, err := p.Update(tui.ButtonPressedMessage{ID: p.search.ID()}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if msg := awaitBroadcast(t, ch).(RecordOpenMessage); msg.Record == nil {
		t.Errorf("root record not found via button")
	}
}

func TestPaneOpen_SecondEnterWhileSearchingIsIgnored(t *testing.T) {
	reg := newTestRegistry(t, []byte("root"))
	p, _, ch := newTestPaneOpen(t, reg)

	p.HandleEvent(key(tui.KeyEnter))
	p.HandleEvent(key(tui.KeyEnter))

	awaitBroadcast(t, ch)
	select {
	case action := <-ch:
		t.Fatalf("second search was started: %T", action)
	case <-time.After(50 * time.Millisecond):
	}
}
