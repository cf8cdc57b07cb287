package dto

// SlashCommandRequest is the form-encoded body Mattermost sends for a
// slash command invocation.
type SlashCommandRequest struct {
	Token     string `form:"token"`
	TriggerID string `form:"trigger_id"`
}

// DialogSubmissionRequest is the JSON body Mattermost sends when the user
// submits or cancels the ticket dialog. Submission values arrive as a flat
// name-to-value map; only the fields declared in the dialog are present.
type DialogSubmissionRequest struct {
	Cancelled  bool              `json:"cancelled"`
	Submission map[string]string `json:"submission"`
	UserID     string            `json:"user_id"`
	ChannelID  string            `json:"channel_id"`
}
