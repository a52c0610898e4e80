package app

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/fourier/entity"
	"github.com/AnkushinDaniil/fourier/entity/kind"
	"github.com/AnkushinDaniil/fourier/entity/parameters"
)

// Command is a single control change sent by the browser.
type Command struct {
	Control string  `json:"control"`
	Value   float64 `json:"value,omitempty"`
	Kind    string  `json:"kind,omitempty"`
}

// Reply is sent back after a command has been applied.
type Reply struct {
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Server exposes a model through a browser page. Requests are served
// concurrently, so every model access goes through mu.
type Server struct {
	mu       sync.Mutex
	model    *entity.Model
	chart    ChartConfig
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, chart ChartConfig, model *entity.Model) *Server {
	return &Server{
		model: model,
		chart: chart,
		addr:  addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/chart", s.handleChart)
	mux.HandleFunc("/samples.csv", s.handleSamples)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.addr).Info("Server running")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// Apply runs cmd against the model, clamping values to the control ranges.
func (s *Server) Apply(cmd Command) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reply Reply
	switch cmd.Control {
	case "terms":
		s.model.SetTerms(int(parameters.TermsRange.Clamp(math.Round(cmd.Value))))
	case "frequency":
		s.model.SetFrequency(parameters.FrequencyRange.Clamp(cmd.Value))
	case "amplitude":
		s.model.SetAmplitude(parameters.AmplitudeRange.Clamp(cmd.Value))
	case "kind":
		k, err := kind.UnmarshalText(cmd.Kind)
		if err != nil {
			reply.Error = err.Error()
			break
		}
		s.model.SetKind(k)
	case "reset":
		s.model.Reset()
	case "populate":
		reply.Message = s.model.Populate()
	default:
		reply.Error = fmt.Sprintf("unknown control: %q", cmd.Control)
	}
	reply.Title = s.model.Title()
	return reply
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	data := indexData{
		PageTitle: s.chart.Title,
		Title:     s.model.Title(),
		Params:    s.model.Params(),
		Kinds:     kind.All,
		Terms:     parameters.TermsRange,
		Frequency: parameters.FrequencyRange,
		Amplitude: parameters.AmplitudeRange,
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.WithError(err).Error("Failed to render index")
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	page := newPage(s.model, s.chart)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.WithError(err).Error("Failed to render chart")
	}
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	grid := s.model.Grid()
	output := append([]float64(nil), s.model.Output()...)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	if err := writeCSV(w, grid, output); err != nil {
		log.WithError(err).Error("Failed to write samples")
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Debug("Websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.WithField("remote", r.RemoteAddr).Debug("Control channel opened")

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("Control channel closed")
			}
			return
		}
		reply := s.Apply(cmd)
		log.WithFields(log.Fields{
			"control": cmd.Control,
			"title":   reply.Title,
		}).Debug("Control applied")

		_ = conn.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := conn.WriteJSON(reply); err != nil {
			log.WithError(err).Debug("Failed to write reply")
			return
		}
	}
}

type indexData struct {
	PageTitle string
	Title     string
	Params    parameters.Parameters
	Kinds     []kind.Kind
	Terms     parameters.Range
	Frequency parameters.Range
	Amplitude parameters.Range
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.PageTitle}}</title>
<style>
body { font-family: sans-serif; margin: 1em 2em; }
iframe { width: 100%; height: 960px; border: none; }
.controls { display: flex; gap: 2em; align-items: center; flex-wrap: wrap; }
label { display: block; }
</style>
</head>
<body>
<h2 id="title">Fourier Series: {{.Title}}</h2>
<div class="controls">
  <div>
    <label>Terms <span id="terms-value">{{.Params.Terms}}</span>
      <input type="range" data-control="terms" min="{{.Terms.Min}}" max="{{.Terms.Max}}" step="{{.Terms.Step}}" value="{{.Params.Terms}}">
    </label>
    <label>Frequency <span id="frequency-value">{{.Params.Frequency}}</span>
      <input type="range" data-control="frequency" min="{{.Frequency.Min}}" max="{{.Frequency.Max}}" step="0.01" value="{{.Params.Frequency}}">
    </label>
    <label>Amplitude <span id="amplitude-value">{{.Params.Amplitude}}</span>
      <input type="range" data-control="amplitude" min="{{.Amplitude.Min}}" max="{{.Amplitude.Max}}" step="0.01" value="{{.Params.Amplitude}}">
    </label>
  </div>
  <div>
    {{range .Kinds}}<label><input type="radio" name="kind" value="{{.}}" {{if eq . $.Params.Kind}}checked{{end}}> {{.}}</label>
    {{end}}
  </div>
  <div>
    <button data-control="populate">Populate</button>
    <button data-control="reset">Reset</button>
    <a href="/samples.csv">samples.csv</a>
  </div>
</div>
<p id="message"></p>
<iframe id="chart" src="/chart"></iframe>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
const send = (cmd) => ws.send(JSON.stringify(cmd));
ws.onmessage = (ev) => {
  const reply = JSON.parse(ev.data);
  if (reply.error) { document.getElementById("message").textContent = reply.error; return; }
  if (reply.message) { document.getElementById("message").textContent = reply.message; }
  document.getElementById("title").textContent = "Fourier Series: " + reply.title;
  document.getElementById("chart").contentWindow.location.reload();
};
document.querySelectorAll("input[type=range]").forEach((el) => {
  el.addEventListener("input", () => {
    document.getElementById(el.dataset.control + "-value").textContent = el.value;
    send({control: el.dataset.control, value: parseFloat(el.value)});
  });
});
document.querySelectorAll("input[name=kind]").forEach((el) => {
  el.addEventListener("change", () => send({control: "kind", kind: el.value}));
});
document.querySelectorAll("button").forEach((el) => {
  el.addEventListener("click", () => {
    if (el.dataset.control === "reset") {
      const defaults = {terms: 5, frequency: 1, amplitude: 1};
      document.querySelectorAll("input[type=range]").forEach((r) => {
        r.value = defaults[r.dataset.control];
        document.getElementById(r.dataset.control + "-value").textContent = r.value;
      });
      document.querySelector("input[name=kind][value=square]").checked = true;
    }
    send({control: el.dataset.control});
  });
});
</script>
</body>
</html>
`))
