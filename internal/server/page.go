package server

const pageHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Noozes Sleep Calculator</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; padding: 24px; max-width: 720px; box-sizing: border-box; }
    * { box-sizing: border-box; }
    h2 { margin-top: 0; font-weight: 600; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .card { border: 1px solid #e0e0e0; border-radius: 10px; padding: 16px; margin: 12px 0; background: #fafafa; }
    .time { font-size: 1.6em; font-weight: 600; }
    .hint { color: #666; font-size: 0.9em; margin-top: 4px; }
    .tabs { display: flex; gap: 16px; margin-bottom: 16px; }
    .field { margin-bottom: 14px; }
    .field label { display: block; font-weight: 500; color: #333; margin-bottom: 4px; }
    .field input[type="text"] { padding: 8px 10px; font-size: 1em; border: 1px solid #ccc; border-radius: 6px; max-width: 100px; }
    button[type="submit"] { padding: 10px 20px; font-size: 1em; font-weight: 500; background: #1976d2; color: #fff; border: none; border-radius: 6px; cursor: pointer; }
    button[type="submit"]:hover { background: #1565c0; }
    footer { margin-top: 40px; color: #666; font-size: 0.9em; text-align: center; }
  </style>
</head>
<body>
  <h2>Noozes</h2>
  <form method="GET" action="/">
    <div class="tabs">
      <label><input type="radio" name="mode" value="wakeup" {{if eq .Mode "wakeup"}}checked{{end}}> Wake up at</label>
      <label><input type="radio" name="mode" value="bedtime" {{if eq .Mode "bedtime"}}checked{{end}}> Go to bed at</label>
      <label><input type="radio" name="mode" value="now" {{if eq .Mode "now"}}checked{{end}}> Sleep now</label>
    </div>
    {{if .Prompt}}<p>{{.Prompt}}</p>{{end}}
    <div class="field">
      <label for="time">Time (HH:MM, ignored for sleep now)</label>
      <input id="time" name="time" type="text" value="{{.Time}}" placeholder="07:00" autocomplete="off">
    </div>
    <input type="hidden" name="format" value="{{.Format}}">
    <button type="submit">Calculate</button>
  </form>

  {{if .Error}}<div class="err">{{.Error}}</div>{{end}}

  {{if .Suggestions}}
  <h3>{{.Heading}}</h3>
  <div class="hint">{{.Context}}</div>
  {{range .Suggestions}}
  <div class="card">
    <div class="time">{{.Display}}</div>
    <div class="hint">{{.Description}}</div>
    <div class="hint" title="share">{{.ShareText}}</div>
  </div>
  {{end}}
  {{end}}

  <footer>A sleep cycle lasts about 90 minutes. It takes around 15 minutes to fall asleep.{{if .Version}} &middot; v{{.Version}}{{end}}</footer>
</body>
</html>
`
