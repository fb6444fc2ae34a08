package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"dehydrate_monitor/internal/models"
	"dehydrate_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const dashboardTemplateName = "dashboard"

var dashboardFuncMap = template.FuncMap{
	"oneDecimal": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"alertClass": func(s models.Severity) string {
		switch s {
		case models.SeverityError:
			return "alert-error"
		case models.SeverityWarning:
			return "alert-warning"
		default:
			return "alert-info"
		}
	},
	"playLabel": func(playing bool) string {
		if playing {
			return "Pause Simulation"
		}
		return "Start Simulation"
	},
	"errorImage": func() string { return service.ErrorImageURL },
}

var dashboardTemplate = template.Must(template.New(dashboardTemplateName).Funcs(dashboardFuncMap).Parse(dashboardHTML))

type dashboardView struct {
	Snapshot    models.PlaybackSnapshot
	AuthEnabled bool
}

// @Summary      Dashboard
// @Description  HTML page rendering the current snapshot; it follows the /ws stream afterwards.
// @Tags         system
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, dashboardTemplateName, dashboardView{
		Snapshot:    h.services.Monitoring.Snapshot(c.Request.Context()),
		AuthEnabled: h.opts.AuthEnabled,
	})
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dehydration Monitor</title>
<style>
body{font-family:system-ui,sans-serif;background:#f3f4f6;color:#1f2937;margin:0;padding:2rem;display:flex;justify-content:center}
main{background:#fff;border-radius:12px;box-shadow:0 10px 25px rgba(0,0,0,.1);padding:2rem;max-width:900px;width:100%}
h1{color:#1d4ed8;text-align:center}
.alert{padding:1rem;border-radius:8px;margin-bottom:1.5rem;font-weight:500}
.alert-error{background:#fee2e2;color:#b91c1c;border:1px solid #fca5a5}
.alert-warning{background:#fef9c3;color:#a16207;border:1px solid #fde047}
.alert-info{background:#dbeafe;color:#1d4ed8;border:1px solid #93c5fd}
.grid{display:grid;grid-template-columns:1fr 1fr;gap:2rem}
.feed{background:#eff6ff;padding:1rem;border-radius:8px;text-align:center}
.feed img{width:100%;border-radius:8px}
.readings{background:#f0fdf4;padding:1rem;border-radius:8px}
.row{display:flex;justify-content:space-between;background:#fff;padding:.75rem;margin:.5rem 0;border-radius:6px;border:1px solid #bbf7d0}
.controls{display:flex;justify-content:center;gap:1rem;margin-top:1.5rem}
button{border:0;border-radius:999px;padding:.75rem 1.5rem;font-size:1rem;font-weight:600;cursor:pointer;color:#fff;background:#3b82f6}
button.playing{background:#ef4444}
button.secondary{background:#d1d5db;color:#1f2937}
.hidden{display:none}
#signin{margin-top:1.5rem;text-align:center}
</style>
</head>
<body>
<main>
<h1>Dehydration Monitor</h1>

<div id="alert" class="alert {{alertClass .Snapshot.Alert.Severity}}{{if not .Snapshot.Alert.Active}} hidden{{end}}">{{.Snapshot.Alert.Message}}</div>

<div class="grid">
  <section class="feed">
    <h2>Live Produce Feed</h2>
    <img id="image" src="{{.Snapshot.ImageURL}}" alt="Produce drying" onerror="this.onerror=null;this.src='{{errorImage}}'">
    <p id="produce">{{with .Snapshot.Reading}}{{.ProduceType}}{{else}}Select Produce{{end}}</p>
  </section>
  <section class="readings">
    <h2>Current Conditions</h2>
    {{with .Snapshot.Reading}}
    <div id="values">
      <div class="row"><span>Temperature</span><strong><span id="temp">{{oneDecimal .TemperatureC}}</span> °C</strong></div>
      <div class="row"><span>Humidity</span><strong><span id="humidity">{{oneDecimal .HumidityPct}}</span> %</strong></div>
      <div class="row"><span>Pressure</span><strong><span id="pressure">{{oneDecimal .PressureHPa}}</span> hPa</strong></div>
      <div class="row"><span>Dryness (predicted)</span><strong><span id="dryness">{{oneDecimal .DrynessPct}}</span> %</strong></div>
      <div class="row"><span>Timestamp</span><strong id="timestamp">{{.Timestamp}}</strong></div>
    </div>
    {{else}}
    <p id="waiting">Waiting for sensor data...</p>
    {{end}}
  </section>
</div>

<div class="controls">
  <button id="toggle" class="{{if .Snapshot.IsPlaying}}playing{{end}}">{{playLabel .Snapshot.IsPlaying}}</button>
  <button id="reset" class="secondary">Reset</button>
</div>

{{if .AuthEnabled}}
<form id="signin">
  <input name="username" placeholder="username" autocomplete="username">
  <input name="password" type="password" placeholder="password" autocomplete="current-password">
  <button type="submit" class="secondary">Sign in</button>
</form>
{{end}}
</main>

<script>
(function () {
  const token = () => localStorage.getItem("dehydrate_token");
  const fmt = (v) => Number(v).toFixed(1);
  const alertClass = {error: "alert-error", warning: "alert-warning"};

  function render(s) {
    const alert = document.getElementById("alert");
    alert.textContent = s.alert.message;
    alert.className = "alert " + (alertClass[s.alert.severity] || "alert-info") + (s.alert.message ? "" : " hidden");
    document.getElementById("image").src = s.image_url;
    const btn = document.getElementById("toggle");
    btn.textContent = s.is_playing ? "Pause Simulation" : "Start Simulation";
    btn.className = s.is_playing ? "playing" : "";
    if (!s.reading) { return; }
    document.getElementById("produce").textContent = s.reading.produce_type;
    const set = (id, v) => { const el = document.getElementById(id); if (el) { el.textContent = v; } };
    set("temp", fmt(s.reading.temperature_c));
    set("humidity", fmt(s.reading.humidity_pct));
    set("pressure", fmt(s.reading.pressure_hpa));
    set("dryness", fmt(s.reading.dryness_pct));
    set("timestamp", s.reading.timestamp);
  }

  async function command(name) {
    const headers = {};
    if (token()) { headers["Authorization"] = "Bearer " + token(); }
    const res = await fetch("/api/v1/playback/" + name, {method: "POST", headers});
    if (res.ok) { render((await res.json()).state); }
  }

  document.getElementById("toggle").onclick = () => command("toggle");
  document.getElementById("reset").onclick = () => command("reset");

  const form = document.getElementById("signin");
  if (form) {
    form.onsubmit = async (e) => {
      e.preventDefault();
      const body = JSON.stringify({username: form.username.value, password: form.password.value});
      const res = await fetch("/auth/sign-in", {method: "POST", headers: {"Content-Type": "application/json"}, body});
      if (res.ok) { localStorage.setItem("dehydrate_token", (await res.json()).token); }
    };
  }

  const scheme = location.protocol === "https:" ? "wss://" : "ws://";
  const ws = new WebSocket(scheme + location.host + "/ws");
  ws.onmessage = (m) => {
    const env = JSON.parse(m.data);
    if (env.type === "snapshot") { render(env.data); }
  };
})();
</script>
</body>
</html>
`
