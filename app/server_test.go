package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/AnkushinDaniil/fourier/entity/kind"
	"github.com/AnkushinDaniil/fourier/entity/parameters"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(":0", DefaultConfig().Chart, newTestModel())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(body)
}

func TestApply(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		cmd       Command
		wantTitle string
		wantMsg   string
		wantErr   bool
	}{
		{Command{Control: "terms", Value: 9}, "Square Wave (9 terms)", "", false},
		{Command{Control: "terms", Value: 42}, "Square Wave (20 terms)", "", false},
		{Command{Control: "kind", Kind: "triangle"}, "Triangle Wave (20 terms)", "", false},
		{Command{Control: "kind", Kind: "sine"}, "Triangle Wave (20 terms)", "", true},
		{Command{Control: "populate"}, "Triangle Wave (20 terms)", "Fourier series populated with 20 terms", false},
		{Command{Control: "reset"}, "Square Wave (5 terms)", "", false},
		{Command{Control: "volume"}, "Square Wave (5 terms)", "", true},
	}
	for _, tt := range tests {
		reply := s.Apply(tt.cmd)
		if reply.Title != tt.wantTitle {
			t.Fatalf("%+v: title = %q, want %q", tt.cmd, reply.Title, tt.wantTitle)
		}
		if reply.Message != tt.wantMsg {
			t.Fatalf("%+v: message = %q, want %q", tt.cmd, reply.Message, tt.wantMsg)
		}
		if (reply.Error != "") != tt.wantErr {
			t.Fatalf("%+v: error = %q", tt.cmd, reply.Error)
		}
	}
}

func TestApplyClampsValues(t *testing.T) {
	s, _ := newTestServer(t)

	s.Apply(Command{Control: "frequency", Value: 9})
	s.Apply(Command{Control: "amplitude", Value: 0})
	s.Apply(Command{Control: "terms", Value: -3})

	p := s.model.Params()
	if p.Frequency != parameters.FrequencyRange.Max {
		t.Fatalf("frequency = %v", p.Frequency)
	}
	if p.Amplitude != parameters.AmplitudeRange.Min {
		t.Fatalf("amplitude = %v", p.Amplitude)
	}
	if p.Terms != 1 {
		t.Fatalf("terms = %v", p.Terms)
	}
}

func TestIndexAndChart(t *testing.T) {
	_, ts := newTestServer(t)

	index := get(t, ts.URL+"/")
	for _, want := range []string{"Fourier Series: Square Wave (5 terms)", `value="sawtooth"`, "Populate", "Reset"} {
		if !strings.Contains(index, want) {
			t.Fatalf("index does not contain %q", want)
		}
	}

	if chart := get(t, ts.URL+"/chart"); !strings.Contains(chart, "echarts") {
		t.Fatal("chart page does not load echarts")
	}

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET /nope: status %d", resp.StatusCode)
	}
}

func TestIndexSlidersSendWhileDragging(t *testing.T) {
	_, ts := newTestServer(t)
	index := get(t, ts.URL+"/")
	if !strings.Contains(index, `querySelectorAll("input[type=range]").forEach((el) => {
  el.addEventListener("input"`) {
		t.Fatal("range inputs are not bound to the input event")
	}
}

func TestSamples(t *testing.T) {
	s, ts := newTestServer(t)
	body := get(t, ts.URL+"/samples.csv")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != len(s.model.Grid())+1 {
		t.Fatalf("lines = %d", len(lines))
	}
}

func TestWebsocketControl(t *testing.T) {
	s, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Command{Control: "terms", Value: 9}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var reply Reply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read: %v", err)
	}
	if reply.Title != "Square Wave (9 terms)" {
		t.Fatalf("title = %q", reply.Title)
	}

	if err := conn.WriteJSON(Command{Control: "kind", Kind: "pulse"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read: %v", err)
	}
	if reply.Title != "Pulse Wave (9 terms)" {
		t.Fatalf("title = %q", reply.Title)
	}

	s.mu.Lock()
	got := s.model.Params().Kind
	s.mu.Unlock()
	if got != kind.Pulse {
		t.Fatalf("model kind = %v", got)
	}
}
