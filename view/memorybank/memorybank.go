// Package memorybank implements the memory page: key/value facts with
// upsert-by-key semantics and client-side search.
package memorybank

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/view"
)

type Bank struct {
	gw      gateway.MemoryGateway
	confirm view.Confirmer
	logger  *zap.Logger

	col   view.Collection[domain.Memory]
	alert view.Alert
}

func New(gw gateway.MemoryGateway, confirm view.Confirmer, logger *zap.Logger) *Bank {
	if confirm == nil {
		confirm = view.ApproveAll
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bank{gw: gw, confirm: confirm, logger: logger}
}

func (b *Bank) Load(ctx context.Context) error {
	b.col.BeginLoad()
	items, err := b.gw.List(ctx)
	b.col.FinishLoad(items, err)
	if err != nil {
		b.alert.Fail(err.Error())
		return err
	}
	return nil
}

// Save upserts one fact. A blank key or value is a silent no-op. When
// the server returns a key already present locally the entry is
// replaced in place, so the bank never holds two memories for one key.
func (b *Bank) Save(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
		return nil
	}
	if !b.col.BeginSubmit() {
		return nil
	}
	defer b.col.EndSubmit()

	saved, err := b.gw.Save(ctx, key, value)
	if err != nil {
		b.alert.Fail(err.Error())
		return err
	}
	b.col.Upsert(func(m domain.Memory) bool { return m.Key == saved.Key }, *saved)
	b.alert.Succeed("Memory saved")
	return nil
}

// Delete removes one fact by key after user confirmation.
func (b *Bank) Delete(ctx context.Context, key string) error {
	if !b.confirm("Delete this memory?") {
		return nil
	}
	if err := b.gw.Delete(ctx, key); err != nil {
		b.alert.Fail(err.Error())
		return err
	}
	b.col.Remove(func(m domain.Memory) bool { return m.Key == key })
	b.alert.Succeed("Memory deleted")
	return nil
}

// Search filters the loaded memories over key and value.
func (b *Bank) Search(query string) []domain.Memory {
	return view.Filter(b.col.Items(), query, func(m domain.Memory) []string {
		return []string{m.Key, m.Value}
	})
}

func (b *Bank) Memories() []domain.Memory { return b.col.Items() }
func (b *Bank) Phase() view.Phase         { return b.col.Phase() }
func (b *Bank) Alert() *view.Alert        { return &b.alert }
