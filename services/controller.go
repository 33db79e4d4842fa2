package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"text-translator/internal/config"
	"text-translator/internal/logger"
	"text-translator/internal/text"
	"text-translator/internal/translation"
	"text-translator/internal/tts"
	"text-translator/models"
)

// Display is the write side of a frontend.
type Display interface {
	// SetOutputText replaces the content of the output area.
	SetOutputText(text string)
	// Alert shows a blocking, user-visible message.
	Alert(message string)
}

// Form is the read side of a frontend. Values are read once, when an action
// is triggered.
type Form interface {
	InputText() string
	OutputText() string
	SourceLang() string
	TargetLang() string
}

// OptionSink receives language options, e.g. a dropdown.
type OptionSink interface {
	AppendOption(lang text.Language)
}

// Controller runs translate and speak requests against the backend and
// applies their outcome to a Display. Each call runs independently; when
// several calls of the same kind overlap, only the latest one is applied.
type Controller struct {
	translator translation.Translator
	synth      tts.Synthesizer
	player     tts.Player
	display    Display
	log        *logger.Logger
	metrics    *Metrics

	translateSeq atomic.Uint64
	speakSeq     atomic.Uint64

	// held from the staleness check through the display write
	translateMu sync.Mutex
	speakMu     sync.Mutex

	mu            sync.RWMutex
	onStateChange func(models.Action)

	playback sync.WaitGroup
}

// NewController wires a controller. A nil log selects the default logger.
func NewController(translator translation.Translator, synth tts.Synthesizer, player tts.Player, display Display, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Default()
	}
	return &Controller{
		translator: translator,
		synth:      synth,
		player:     player,
		display:    display,
		log:        log,
	}
}

// SetMetrics attaches a metrics registry updated on every resolved action.
func (c *Controller) SetMetrics(m *Metrics) {
	c.metrics = m
}

// OnStateChange registers fn to be called when an action becomes pending
// and again when it resolves. fn runs on the request goroutine.
func (c *Controller) OnStateChange(fn func(models.Action)) {
	c.mu.Lock()
	c.onStateChange = fn
	c.mu.Unlock()
}

// PopulateLanguageOptions fills the source sink with every option and the
// target sink with every option except auto-detect, keeping their order.
func (c *Controller) PopulateLanguageOptions(options []text.Language, source, target OptionSink) {
	sourceOpts, targetOpts := text.SelectorOptions(options)
	for _, lang := range sourceOpts {
		source.AppendOption(lang)
	}
	for _, lang := range targetOpts {
		target.AppendOption(lang)
	}
	c.log.Debug("Populated %d source and %d target languages", len(sourceOpts), len(targetOpts))
}

// Translate reads the form now and submits the request in the background.
// The resolved action is delivered on the returned channel.
func (c *Controller) Translate(ctx context.Context, form Form) <-chan *models.Action {
	input, source, target := form.InputText(), form.SourceLang(), form.TargetLang()

	done := make(chan *models.Action, 1)
	go func() {
		defer close(done)
		done <- c.SubmitTranslate(ctx, input, source, target)
	}()
	return done
}

// Speak reads the current output text now and submits it for synthesis in
// the background.
func (c *Controller) Speak(ctx context.Context, form Form) <-chan *models.Action {
	output, target := form.OutputText(), form.TargetLang()

	done := make(chan *models.Action, 1)
	go func() {
		defer close(done)
		done <- c.SubmitSpeak(ctx, output, target)
	}()
	return done
}

// SubmitTranslate sends text for translation and blocks until the outcome
// has been applied. A backend error is alerted and leaves the output as is;
// a transport error is only logged.
func (c *Controller) SubmitTranslate(ctx context.Context, input, sourceLang, targetLang string) *models.Action {
	action := models.NewAction(models.KindTranslate, c.translateSeq.Add(1))
	log := c.actionLog(action)
	c.notify(action)

	resp, err := c.translator.Translate(ctx, models.TranslateRequest{
		Text:       input,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})

	c.translateMu.Lock()
	defer c.translateMu.Unlock()
	if c.translateSeq.Load() != action.Seq {
		return c.discard(action, log)
	}

	translated, failed, schemaErr := resp.Result()
	if err == nil {
		err = resultError(config.TranslatePath, resp.Error, failed, schemaErr)
	}
	if err != nil {
		return c.fail(action, log, err)
	}

	c.display.SetOutputText(translated)
	c.resolve(action, models.StatusRendered, nil)

	detected := resp.SourceLang
	if detected == "" {
		detected = sourceLang
	}
	log.Info("Translated %d chars %s -> %s in %s", len(input), text.GetLanguageName(detected), text.GetLanguageName(targetLang), action.Duration())
	return action
}

// SubmitSpeak asks the backend to synthesize translated text and starts
// playback of the result exactly once. Playback is not awaited and its
// errors are only logged.
func (c *Controller) SubmitSpeak(ctx context.Context, translated, targetLang string) *models.Action {
	action := models.NewAction(models.KindSpeak, c.speakSeq.Add(1))
	log := c.actionLog(action)
	c.notify(action)

	resp, err := c.synth.Synthesize(ctx, models.SpeakRequest{
		Translation: translated,
		TargetLang:  targetLang,
	})

	c.speakMu.Lock()
	defer c.speakMu.Unlock()
	if c.speakSeq.Load() != action.Seq {
		return c.discard(action, log)
	}

	audioFile, failed, schemaErr := resp.Result()
	if err == nil {
		err = resultError(config.TextToSpeechPath, resp.Error, failed, schemaErr)
	}
	if err != nil {
		return c.fail(action, log, err)
	}

	c.play(audioFile, log)
	c.resolve(action, models.StatusRendered, nil)
	log.Info("Speech ready in %s: %s", action.Duration(), audioFile)
	return action
}

// SpeakInput is the speech-to-text control. It has no behavior and always
// returns ErrUnimplemented.
func (c *Controller) SpeakInput() error {
	c.log.Debug("Speak input triggered; speech capture is not available")
	return ErrUnimplemented
}

// Wait blocks until every playback started by the controller has finished.
func (c *Controller) Wait() {
	c.playback.Wait()
}

func (c *Controller) play(ref string, log *logger.Logger) {
	c.playback.Add(1)
	go func() {
		defer c.playback.Done()
		// playback outlives the request context
		if err := c.player.Play(context.Background(), ref); err != nil {
			log.Error("Playback failed: %v", err)
		}
	}()
}

// fail applies the error asymmetry: backend-reported errors are alerted,
// everything else is logged.
func (c *Controller) fail(action *models.Action, log *logger.Logger, err error) *models.Action {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		c.display.Alert(AlertMessage(appErr.Message))
		c.resolve(action, models.StatusAlertShown, err)
		log.Warn("Backend error: %s", appErr.Message)
		return action
	}

	c.resolve(action, models.StatusLoggedSilently, err)
	if errors.Is(err, context.Canceled) {
		log.Info("Request cancelled: %v", err)
		return action
	}
	log.Error("Request failed: %v", err)
	return action
}

func (c *Controller) discard(action *models.Action, log *logger.Logger) *models.Action {
	c.resolve(action, models.StatusDiscarded, nil)
	log.Debug("Discarding stale response (seq %d)", action.Seq)
	return action
}

func (c *Controller) resolve(action *models.Action, status models.ActionStatus, err error) {
	action.Resolve(status, err)
	c.metrics.Observe(action)
	c.notify(action)
}

func (c *Controller) notify(action *models.Action) {
	c.mu.RLock()
	fn := c.onStateChange
	c.mu.RUnlock()
	if fn != nil {
		fn(*action)
	}
}

func (c *Controller) actionLog(action *models.Action) *logger.Logger {
	return c.log.WithField("action", string(action.Kind)).WithField("id", action.ID)
}
