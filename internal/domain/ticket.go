package domain

// Submission carries the field values entered in the ticket dialog,
// together with the submitter and originating channel.
type Submission struct {
	Cluster   string
	Resource  string
	Problem   string
	Network   string
	UserID    string
	ChannelID string
}

// Ticket is the record minted for an accepted submission. It only lives as
// long as the posting workflow; the posted message is its sole persistence.
type Ticket struct {
	ID         string
	Submission Submission
}

// Post is a Mattermost channel post. Props carry structured metadata that
// downstream consumers can filter on.
type Post struct {
	ChannelID string         `json:"channel_id"`
	Message   string         `json:"message"`
	Props     map[string]any `json:"props,omitempty"`
}

// DialogOption is one entry of a select element. Text is the display label,
// Value the underlying submitted value.
type DialogOption struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// DialogElement describes a single input field of an interactive dialog.
// Field names follow the Mattermost dialog schema.
type DialogElement struct {
	DisplayName string         `json:"display_name"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Options     []DialogOption `json:"options,omitempty"`
	Optional    bool           `json:"optional"`
}

// Dialog is the form definition rendered by the platform.
type Dialog struct {
	Title       string          `json:"title"`
	Elements    []DialogElement `json:"elements"`
	SubmitLabel string          `json:"submit_label"`
}

// DialogRequest is the payload for the dialog-open API: the trigger that
// authorizes the dialog, the callback URL the platform invokes on submit,
// and the dialog itself.
type DialogRequest struct {
	TriggerID string `json:"trigger_id"`
	URL       string `json:"url"`
	Dialog    Dialog `json:"dialog"`
}
