package notion_client

import (
	"encoding/json"
	"time"
)

// Wire shapes for the workspace API (version 2022-06-28). Only the
// fields this service touches are modeled.

type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type SelectOption struct {
	Name string `json:"name"`
}

type DateValue struct {
	Start string `json:"start"`
}

// PropertyValue covers every property type used by the article schema.
// Exactly one field is set per value; pointers keep unset fields out of
// write payloads.
type PropertyValue struct {
	Type        string         `json:"type,omitempty"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	URL         *string        `json:"url,omitempty"`
}

type Page struct {
	Object         string                   `json:"object,omitempty"`
	ID             string                   `json:"id"`
	URL            string                   `json:"url,omitempty"`
	CreatedTime    time.Time                `json:"created_time"`
	LastEditedTime time.Time                `json:"last_edited_time"`
	Archived       bool                     `json:"archived"`
	Properties     map[string]PropertyValue `json:"properties"`
}

type Paragraph struct {
	RichText []RichText `json:"rich_text"`
}

type Block struct {
	Object    string     `json:"object,omitempty"`
	ID        string     `json:"id,omitempty"`
	Type      string     `json:"type"`
	Paragraph *Paragraph `json:"paragraph,omitempty"`
}

type Database struct {
	ID         string                     `json:"id"`
	Title      []RichText                 `json:"title"`
	Properties map[string]json.RawMessage `json:"properties"`
}

type ParentRef struct {
	Type       string `json:"type,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

type QueryFilter struct {
	And      []QueryFilter `json:"and,omitempty"`
	Property string        `json:"property,omitempty"`
	Checkbox *CheckboxCond `json:"checkbox,omitempty"`
	Select   *SelectCond   `json:"select,omitempty"`
	RichText *RichTextCond `json:"rich_text,omitempty"`
}

type CheckboxCond struct {
	Equals bool `json:"equals"`
}

type SelectCond struct {
	Equals string `json:"equals"`
}

type RichTextCond struct {
	Equals string `json:"equals"`
}

type QuerySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type queryRequest struct {
	Filter      *QueryFilter `json:"filter,omitempty"`
	Sorts       []QuerySort  `json:"sorts,omitempty"`
	StartCursor string       `json:"start_cursor,omitempty"`
	PageSize    int          `json:"page_size,omitempty"`
}

type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type blockListResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type createPageRequest struct {
	Parent     ParentRef                `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
	Children   []Block                  `json:"children,omitempty"`
}

type updatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties,omitempty"`
	Archived   *bool                    `json:"archived,omitempty"`
}

type createDatabaseRequest struct {
	Parent     ParentRef                  `json:"parent"`
	Title      []RichText                 `json:"title"`
	Properties map[string]json.RawMessage `json:"properties"`
}

type appendBlocksRequest struct {
	Children []Block `json:"children"`
}

type apiError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
