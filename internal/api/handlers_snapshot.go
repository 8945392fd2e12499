package api

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/search"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// SnapshotHandler parses snapshots posted by clients. Nothing is kept
// between requests.
type SnapshotHandler struct {
	cfg uiparse.Config
}

func NewSnapshotHandler(cfg uiparse.Config) *SnapshotHandler {
	return &SnapshotHandler{cfg: cfg}
}

// FindRequest is the body of POST /api/find.
type FindRequest struct {
	Text      string          `json:"text"`
	Exact     bool            `json:"exact,omitempty"`
	Fuzzy     bool            `json:"fuzzy,omitempty"`
	Threshold float64         `json:"threshold,omitempty"`
	Types     []string        `json:"types,omitempty"`
	Limit     int             `json:"limit,omitempty"`
	Snapshot  json.RawMessage `json:"snapshot"`
}

// HandleParse summarises the snapshot in the request body.
// Query: components=true adds the component list; format=yaml|json|msgpack.
func (h *SnapshotHandler) HandleParse(c echo.Context) error {
	ui, err := h.decodeBody(c)
	if err != nil {
		return err
	}
	report := output.Summarize(ui, c.Response().Header().Get(echo.HeaderXRequestID))
	if ok, _ := strconv.ParseBool(c.QueryParam("components")); ok {
		report = report.WithComponents(ui)
	}
	return respond(c, http.StatusOK, report)
}

// HandleComponents lists the components of the snapshot in the request
// body, optionally only those of one kind.
func (h *SnapshotHandler) HandleComponents(c echo.Context) error {
	ui, err := h.decodeBody(c)
	if err != nil {
		return err
	}
	components := output.Components(ui)
	if kind := c.QueryParam("kind"); kind != "" {
		filtered := []output.Component{}
		for _, comp := range components {
			if strings.EqualFold(comp.Kind, kind) {
				filtered = append(filtered, comp)
			}
		}
		components = filtered
	}
	return respond(c, http.StatusOK, components)
}

// HandleFind searches the snapshot embedded in a FindRequest.
func (h *SnapshotHandler) HandleFind(c echo.Context) error {
	var req FindRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid find request", err)
	}
	if len(req.Snapshot) == 0 || string(req.Snapshot) == "null" {
		return NewValidationError("snapshot", nil)
	}
	raw, err := uitree.DecodeSnapshot(bytes.NewReader(req.Snapshot))
	if err != nil {
		return NewValidationError("snapshot", err)
	}

	matches, err := search.Find(uiparse.Parse(raw, h.cfg), search.Options{
		Text:      req.Text,
		Exact:     req.Exact,
		Fuzzy:     req.Fuzzy,
		Threshold: req.Threshold,
		Types:     req.Types,
		Limit:     req.Limit,
	})
	if err != nil {
		return NewValidationError("text", err)
	}
	return respond(c, http.StatusOK, matches)
}

func (h *SnapshotHandler) decodeBody(c echo.Context) (*uiparse.UserInterface, error) {
	raw, err := uitree.DecodeSnapshot(c.Request().Body)
	if err != nil {
		return nil, NewBadRequestError("request body is not a UI tree snapshot", err)
	}
	return uiparse.Parse(raw, h.cfg), nil
}

var contentTypes = map[output.Format]string{
	output.FormatJSON:    echo.MIMEApplicationJSON,
	output.FormatYAML:    "application/yaml",
	output.FormatMsgpack: echo.MIMEApplicationMsgpack,
	output.FormatText:    echo.MIMETextPlainCharsetUTF8,
}

// respond writes v in the format named by the format query parameter,
// JSON by default.
func respond(c echo.Context, status int, v any) error {
	format := output.FormatJSON
	if q := c.QueryParam("format"); q != "" {
		f, err := output.ParseFormat(q)
		if err != nil {
			return NewValidationError("format", err)
		}
		format = f
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, format, v); err != nil {
		return NewInternalError("encode response", err)
	}
	return c.Blob(status, contentTypes[format], buf.Bytes())
}
