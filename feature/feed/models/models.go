package models

import (
	"time"

	"collection-sync/core/changes"
	"collection-sync/core/utils"
)

// Item is a mirrored feed entry, stored in the 'feed_items' table.
type Item struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Feed      string    `gorm:"column:feed;size:64;not null;uniqueIndex:idx_feed_item_key,priority:1;index:idx_feed_position,priority:1" json:"feed"`
	ItemKey   string    `gorm:"column:item_key;size:191;not null;uniqueIndex:idx_feed_item_key,priority:2" json:"id"`
	Position  int       `gorm:"column:position;not null;index:idx_feed_position,priority:2" json:"position"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	Revision  int       `gorm:"column:revision;not null;default:0" json:"revision"`
	Pinned    bool      `gorm:"column:pinned;not null;default:false" json:"pinned"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "feed_items"
}

// Columns lists the columns the service relies on.
var Columns = []string{"id", "feed", "item_key", "position", "title", "body", "revision", "pinned", "created_at", "updated_at"}

// Entry is a feed entry as published in a snapshot.
// Fields are loosely typed: producers write ids as numbers or strings and flags as 0/1.
type Entry struct {
	ID       any    `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Revision any    `json:"revision,omitempty"`
	Pinned   any    `json:"pinned,omitempty"`
}

// Key returns the normalised identity of the entry.
func (e Entry) Key() string {
	return utils.ToString(e.ID)
}

// Complete reports whether the entry carries an id and a title.
func (e Entry) Complete() bool {
	return e.Key() != "" && e.Title != ""
}

// ToItem creates a new row for the entry.
func (e Entry) ToItem(feed string) *Item {
	item := &Item{Feed: feed, ItemKey: e.Key()}
	item.Apply(e)
	return item
}

// Differs reports whether the row content differs from the entry.
func (i *Item) Differs(e Entry) bool {
	return i.Title != e.Title ||
		i.Body != e.Body ||
		i.Revision != utils.ToInt(e.Revision) ||
		i.Pinned != utils.ToBool(e.Pinned)
}

// Apply copies the entry content into the row and reports whether anything changed.
func (i *Item) Apply(e Entry) bool {
	if !i.Differs(e) {
		return false
	}
	i.Title = e.Title
	i.Body = e.Body
	i.Revision = utils.ToInt(e.Revision)
	i.Pinned = utils.ToBool(e.Pinned)
	return true
}

// Snapshot is the published document of a feed.
type Snapshot struct {
	Items []Entry `json:"items"`
}

// BodyPatch is the textual change of an updated entry body.
type BodyPatch struct {
	ID    string `json:"id"`
	Patch string `json:"patch"`
}

// DiffReport describes how the stored items differ from the current snapshot.
type DiffReport struct {
	Feed    string              `json:"feed"`
	Stored  int                 `json:"stored"`
	Entries int                 `json:"entries"`
	Script  *changes.EditScript `json:"script"`
	Summary changes.Summary     `json:"summary"`
	// Steps is the replay plan for views showing the collection.
	Steps   changes.Batches `json:"steps"`
	Patches []BodyPatch     `json:"patches"`
}

// SyncReport summarises a sync run. Skipped counts incomplete and over-limit entries,
// Duplicates the entries dropped because an earlier entry has the same id.
type SyncReport struct {
	Feed       string `json:"feed"`
	DryRun     bool   `json:"dry_run"`
	Changed    bool   `json:"changed"`
	Inserted   int    `json:"inserted"`
	Updated    int    `json:"updated"`
	Removed    int    `json:"removed"`
	Skipped    int    `json:"skipped"`
	Duplicates int    `json:"duplicates"`
	Total      int    `json:"total"`
}
