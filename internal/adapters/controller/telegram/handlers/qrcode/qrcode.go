package qrcode

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/nlypage/intele"
	"github.com/nlypage/intele/collector"
	"github.com/spf13/viper"
	tele "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/layout"

	"github.com/Badsnus/qrage/cmd/bot"
	"github.com/Badsnus/qrage/internal/adapters/database/postgres"
	"github.com/Badsnus/qrage/internal/domain/common/errorz"
	"github.com/Badsnus/qrage/internal/domain/entity"
	"github.com/Badsnus/qrage/internal/domain/service"
	"github.com/Badsnus/qrage/internal/domain/utils"
	"github.com/Badsnus/qrage/pkg/document"
	"github.com/Badsnus/qrage/pkg/logger/types"
	qr "github.com/Badsnus/qrage/pkg/qrcode"
)

type sessionStorage interface {
	Get(ctx context.Context, userID int64) (entity.Session, error)
	Set(ctx context.Context, userID int64, session entity.Session) error
	Clear(ctx context.Context, userID int64) error
}

type styleService interface {
	Get(ctx context.Context, userID int64) (entity.Preferences, error)
	SetForeground(ctx context.Context, userID int64, hex string) (entity.Preferences, bool, error)
	SetBackground(ctx context.Context, userID int64, hex string) (entity.Preferences, bool, error)
	SetTitle(ctx context.Context, userID int64, title string) (entity.Preferences, error)
	SetErrorCorrection(ctx context.Context, userID int64, level string) (entity.Preferences, error)
	SetBackgroundImage(ctx context.Context, userID int64, fileID string) (entity.Preferences, error)
	ApplyPreset(ctx context.Context, userID int64, name string) (entity.Preferences, error)
	Reset(ctx context.Context, userID int64) error
}

type historyService interface {
	Record(ctx context.Context, userID int64, typ entity.ContentType, payload, platform string) (*entity.HistoryEntry, error)
	List(ctx context.Context, userID int64) ([]entity.HistoryEntry, error)
	Get(ctx context.Context, userID int64, id string) (*entity.HistoryEntry, error)
	Remove(ctx context.Context, userID int64, id string) error
	Clear(ctx context.Context, userID int64) (int64, error)
	MarkExported(ctx context.Context, userID int64, id string, format service.Format) error
}

type exportService interface {
	Export(ctx context.Context, format service.Format, req qr.ExportRequest) (*qr.Artifact, error)
	Preview(ctx context.Context, req qr.ExportRequest) (*qr.Artifact, error)
}

type userService interface {
	Get(ctx context.Context, userID int64) (*entity.User, error)
	SetEmail(ctx context.Context, userID int64, email string) (*entity.User, error)
}

type mailer interface {
	SendArtifact(to string, a *qr.Artifact) error
}

type fileDownloader interface {
	File(file *tele.File) (io.ReadCloser, error)
}

type Handler struct {
	layout *layout.Layout
	logger *types.Logger
	input  *intele.InputManager
	files  fileDownloader
	mailer mailer
	size   int

	sessions       sessionStorage
	styleService   styleService
	historyService historyService
	exportService  exportService
	userService    userService
}

func New(b *bot.Bot) *Handler {
	h := &Handler{
		layout:         b.Layout,
		files:          b.Bot,
		logger:         b.Logger,
		input:          b.Input,
		size:           viper.GetInt("settings.qr.size"),
		sessions:       b.Redis.Sessions,
		styleService:   service.NewStyleService(b.Redis.Preferences),
		historyService: service.NewHistoryService(postgres.NewHistoryStorage(b.DB), viper.GetInt("settings.qr.history-limit")),
		exportService:  service.NewExportService(b.Renderer, document.NewExporter(b.Renderer), b.Logger),
		userService:    service.NewUserService(postgres.NewUserStorage(b.DB)),
	}
	if b.Mailer != nil {
		h.mailer = b.Mailer
	}
	return h
}

func (h Handler) QRSetup(group *tele.Group) {
	group.Handle("/url", h.url)
	group.Handle("/wifi", h.wifi)
	group.Handle("/social", h.social)
	group.Handle("/platforms", h.platforms)
	group.Handle(h.layout.Callback("social:platform"), h.socialPicked)

	group.Handle("/style", h.style)
	group.Handle("/title", h.title)
	group.Handle("/fg", h.foreground)
	group.Handle("/bg", h.background)
	group.Handle("/ec", h.errorCorrection)
	group.Handle("/preset", h.preset)
	group.Handle(h.layout.Callback("preset:default"), h.presetPicked)
	group.Handle(tele.OnPhoto, h.backgroundImage)
	group.Handle("/nobg", h.removeBackgroundImage)
	group.Handle("/reset", h.reset)

	group.Handle("/preview", h.preview)
	group.Handle("/export", h.export)
	group.Handle(h.layout.Callback("export:png"), h.exportPicked)
	group.Handle("/email", h.email)

	group.Handle("/history", h.history)
	group.Handle(h.layout.Callback("history:open"), h.historyOpen)
	group.Handle(h.layout.Callback("history:forget"), h.historyForget)
	group.Handle("/forget", h.forget)
	group.Handle("/clear", h.clear)
}

// ask keeps prompting until check accepts the answer or the input is canceled.
func (h Handler) ask(c tele.Context, prompt string, check func(string) error) (string, bool) {
	inputCollector := collector.New()
	_ = inputCollector.Send(c, prompt)

	for {
		message, canceled, errGet := h.input.Get(context.Background(), c.Sender().ID, 0)
		if message != nil {
			inputCollector.Collect(message)
		}
		switch {
		case canceled:
			_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true, ExcludeLast: true})
			return "", false
		case errGet != nil:
			h.logger.Errorf("(user: %d) error while reading input: %v", c.Sender().ID, errGet)
			_ = inputCollector.Send(c, h.layout.Text(c, "input_error", prompt))
		default:
			text := strings.TrimSpace(utils.GetMessageText(message))
			if err := check(text); err != nil {
				_ = inputCollector.Send(c, h.userMessage(c, err))
				continue
			}
			_ = inputCollector.Clear(c, collector.ClearOptions{IgnoreErrors: true})
			return text, true
		}
	}
}

// request builds the export request for the user's current code. The
// returned notices explain degradations the renderer cannot see, such as a
// background photo that could not be fetched.
func (h Handler) request(ctx context.Context, c tele.Context) (qr.ExportRequest, []string, error) {
	userID := c.Sender().ID
	session, err := h.sessions.Get(ctx, userID)
	if err != nil {
		return qr.ExportRequest{}, nil, err
	}
	prefs, err := h.styleService.Get(ctx, userID)
	if err != nil {
		return qr.ExportRequest{}, nil, err
	}

	var (
		background []byte
		notices    []string
	)
	if prefs.BackgroundFileID != "" {
		background, err = h.download(prefs.BackgroundFileID)
		if err != nil {
			h.logger.Warnf("(user: %d) background image unavailable: %v", userID, err)
			background = nil
			notices = append(notices, h.layout.Text(c, "bg_unavailable"))
		}
	}
	req, err := service.BuildRequest(session, prefs, background, h.size)
	return req, notices, err
}

func (h Handler) download(fileID string) ([]byte, error) {
	rc, err := h.files.File(&tele.File{FileID: fileID})
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// sendPreview renders the current code and replies with it.
func (h Handler) sendPreview(c tele.Context) error {
	ctx := context.Background()
	req, notices, err := h.request(ctx, c)
	if err != nil {
		return h.fail(c, "building preview", err)
	}
	a, err := h.exportService.Preview(ctx, req)
	if err != nil {
		return h.fail(c, "rendering preview", err)
	}
	a.Notices = append(notices, a.Notices...)

	return c.Send(&tele.Photo{
		File:    tele.FromReader(bytes.NewReader(a.Data)),
		Caption: previewCaption(h.layout, c, req, a),
	}, h.layout.Markup(c, "export"))
}

// fail logs unexpected errors and answers with a user facing message.
func (h Handler) fail(c tele.Context, action string, err error) error {
	switch {
	case errors.Is(err, errorz.ErrInvalidInput), errors.Is(err, errorz.ErrNoSession),
		errors.Is(err, errorz.ErrNotFound), errors.Is(err, errorz.ErrEncoding):
		h.logger.Debugf("(user: %d) %s: %v", c.Sender().ID, action, err)
	default:
		h.logger.Errorf("(user: %d) error while %s: %v", c.Sender().ID, action, err)
	}
	return c.Send(h.userMessage(c, err))
}

// userMessage maps errors to chat text.
func (h Handler) userMessage(c tele.Context, err error) string {
	switch {
	case errors.Is(err, errorz.ErrNoSession):
		return h.layout.Text(c, "no_session")
	case errors.Is(err, errorz.ErrNotFound):
		return h.layout.Text(c, "not_found")
	case errors.Is(err, errorz.ErrEncoding):
		return h.layout.Text(c, "too_long")
	case errors.Is(err, errorz.ErrInvalidInput):
		return h.layout.Text(c, "invalid_input", err.Error())
	}
	return h.layout.Text(c, "technical_issues")
}
