package feed

import (
	"context"
	"facts/pkg/log"
	"facts/pkg/models"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validate checks a draft before anything is sent to the store. Text and
// source are checked with surrounding whitespace removed, which is also how
// they are stored.
func Validate(d models.Draft) error {
	text := strings.TrimSpace(d.Text)
	if len(text) == 0 {
		return &ValidationFailure{Field: models.FieldText, Reason: "text is empty"}
	}
	if utf8.RuneCountInString(text) > models.MaxFactTextLength {
		return &ValidationFailure{Field: models.FieldText, Reason: "text is too long"}
	}
	if len(d.Category) == 0 {
		return &ValidationFailure{Field: models.FieldCategory, Reason: "category is empty"}
	}
	if !models.IsCategory(d.Category) {
		return &ValidationFailure{Field: models.FieldCategory, Reason: "unknown category " + d.Category}
	}
	if len(strings.TrimSpace(d.Source)) == 0 {
		return &ValidationFailure{Field: models.FieldSource, Reason: "source is empty"}
	}
	if !isHTTPURL(strings.TrimSpace(d.Source)) {
		return &ValidationFailure{Field: models.FieldSource, Reason: "source is not an http or https url"}
	}
	return nil
}

// isHTTPURL accepts absolute http and https urls with a host, so "http:/x.com"
// is rejected.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && len(u.Host) > 0
}

// Submit inserts the draft as a new fact and puts the stored row at the top of
// the list. An invalid draft is ignored without contacting the store. The draft
// is reset only after a successful insert.
func (f *Feed) Submit(ctx context.Context, d *models.Draft) (*models.Fact, bool) {
	logger := log.Logger()

	if err := Validate(*d); err != nil {
		logger.Debugf(nil, "ignoring submission, %s", err)
		return nil, false
	}

	fact := models.NewFact(strings.TrimSpace(d.Text), strings.TrimSpace(d.Source), d.Category, f.now())

	created, err := f.store.InsertFact(ctx, fact)
	if err != nil {
		logger.Errorf(fact, "%s", &RemoteFailure{Op: OpInsert, FactID: fact.ID, Err: err})
		return nil, false
	}
	if created == nil {
		logger.Errorf(fact, "no row returned inserting fact")
		return nil, false
	}

	f.prepend(*created)
	d.Reset()

	logger.Infof(created, "created fact %s", created.ID)
	f.notify(models.NewFactCreatedEvent(*created))

	return created, true
}
