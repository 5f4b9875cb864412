// Package notes implements the notes page. The backend has no update
// endpoint, so editing is delete-then-create: the replacement gets a
// fresh ID and creation time, and a delete that succeeds before a
// create that fails loses the note from the local view. That gap is
// inherited from the API shape and surfaced as a PARTIAL error rather
// than papered over.
package notes

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/view"
)

type Notebook struct {
	gw      gateway.NoteGateway
	confirm view.Confirmer
	logger  *zap.Logger

	col   view.Collection[domain.Note]
	alert view.Alert
}

func New(gw gateway.NoteGateway, confirm view.Confirmer, logger *zap.Logger) *Notebook {
	if confirm == nil {
		confirm = view.ApproveAll
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notebook{gw: gw, confirm: confirm, logger: logger}
}

func (n *Notebook) Load(ctx context.Context) error {
	n.col.BeginLoad()
	items, err := n.gw.List(ctx)
	n.col.FinishLoad(items, err)
	if err != nil {
		n.alert.Fail(err.Error())
		return err
	}
	return nil
}

// Add validates and submits a draft; the confirmed note is prepended so
// the list stays newest-first. Blank title or content is a silent no-op.
func (n *Notebook) Add(ctx context.Context, draft gateway.NoteDraft) error {
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Content) == "" {
		return nil
	}
	if !n.col.BeginSubmit() {
		return nil
	}
	defer n.col.EndSubmit()

	created, err := n.gw.Create(ctx, draft)
	if err != nil {
		n.alert.Fail(err.Error())
		return err
	}
	n.col.Prepend(*created)
	n.alert.Succeed("Note saved")
	return nil
}

// Update edits a note as delete-old-plus-create-new. If the delete
// fails nothing changes. If the delete succeeds and the create fails
// the old note is gone and not restored; the caller gets a PARTIAL
// domain error and the page shows it.
func (n *Notebook) Update(ctx context.Context, id string, draft gateway.NoteDraft) error {
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Content) == "" {
		return nil
	}
	existing := n.col.Find(func(note domain.Note) bool { return note.ID == id })
	if existing == nil {
		return domain.ErrNoteNotFound
	}
	if !n.col.BeginSubmit() {
		return nil
	}
	defer n.col.EndSubmit()

	if err := n.gw.Delete(ctx, id); err != nil {
		n.alert.Fail(err.Error())
		return err
	}

	created, err := n.gw.Create(ctx, draft)
	if err != nil {
		n.col.Remove(func(note domain.Note) bool { return note.ID == id })
		partial := domain.WrapError(domain.ErrCodePartial,
			"note was removed but its replacement was not saved", err)
		n.logger.Warn("non-atomic note update lost data",
			zap.String("note_id", id), zap.Error(err))
		n.alert.Fail(partial.Error())
		return partial
	}

	n.col.Replace(func(note domain.Note) bool { return note.ID == id }, *created)
	n.alert.Succeed("Note updated")
	return nil
}

// Delete removes one note after user confirmation.
func (n *Notebook) Delete(ctx context.Context, id string) error {
	if !n.confirm("Delete this note?") {
		return nil
	}
	if err := n.gw.Delete(ctx, id); err != nil {
		n.alert.Fail(err.Error())
		return err
	}
	n.col.Remove(func(note domain.Note) bool { return note.ID == id })
	n.alert.Succeed("Note deleted")
	return nil
}

// Search filters the loaded notes over title and content.
func (n *Notebook) Search(query string) []domain.Note {
	return view.Filter(n.col.Items(), query, func(note domain.Note) []string {
		return []string{note.Title, note.Content}
	})
}

func (n *Notebook) Notes() []domain.Note { return n.col.Items() }
func (n *Notebook) Phase() view.Phase    { return n.col.Phase() }
func (n *Notebook) Alert() *view.Alert   { return &n.alert }
