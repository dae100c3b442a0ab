package server

import (
	"html/template"

	"github.com/AlinaYaremko/lab-3-ad/internal/dataset"
	"github.com/AlinaYaremko/lab-3-ad/internal/models"
	"github.com/AlinaYaremko/lab-3-ad/internal/regions"
)

// dashboardData is the template payload for the main page.
type dashboardData struct {
	Regions    []regions.Region
	Params     []models.Parameter
	Query      dataset.Query
	View       string
	Records    []models.Record
	ChartURL   string
	Notice     string
	BuiltAt    string
	Sources    int
	TotalCount int
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html lang="uk">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Аналіз Vegetation Health Index (VHI)</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; background: #f5f6fa; color: #2d3436; }
        .header { background: linear-gradient(135deg, #0984e3, #00b894); color: white; padding: 24px 32px; }
        .header h1 { margin: 0; font-size: 1.6em; }
        .header .meta { margin-top: 6px; opacity: 0.85; font-size: 0.9em; }
        .container { max-width: 1000px; margin: 24px auto; padding: 0 16px; }
        form.filters { background: white; border-radius: 8px; padding: 16px; box-shadow: 0 1px 4px rgba(0,0,0,0.08);
                       display: flex; flex-wrap: wrap; gap: 12px; align-items: flex-end; }
        form.filters label { display: flex; flex-direction: column; font-size: 0.85em; gap: 4px; }
        form.filters input, form.filters select { padding: 6px 8px; border: 1px solid #dfe6e9; border-radius: 4px; }
        form.filters input[type=number] { width: 80px; }
        button { background: #0984e3; color: white; border: none; border-radius: 4px; padding: 8px 16px; cursor: pointer; }
        button:hover { background: #0868b3; }
        .fetch-form button { background: #00b894; }
        .notice { background: #ffeaa7; border-radius: 8px; padding: 16px; margin-top: 16px; }
        table { width: 100%; border-collapse: collapse; background: white; margin-top: 16px;
                border-radius: 8px; overflow: hidden; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
        th, td { padding: 8px 12px; text-align: right; border-bottom: 1px solid #f1f2f6; }
        th { background: #2d3436; color: white; }
        td:first-child, th:first-child { text-align: left; }
        iframe.chart { width: 100%; height: 460px; border: none; background: white; border-radius: 8px;
                       margin-top: 16px; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
        .footer { text-align: center; color: #636e72; font-size: 0.85em; margin: 24px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Аналіз Vegetation Health Index (VHI)</h1>
        <div class="meta">Набір даних: {{.TotalCount}} записів із {{.Sources}} файлів · зібрано {{.BuiltAt}}</div>
    </div>
    <div class="container">
        <form class="filters" method="get" action="/">
            <label>Область
                <select name="region">
                    {{range .Regions}}<option value="{{.Name}}"{{if eq .Name $.Query.Region}} selected{{end}}>{{.Name}}</option>
                    {{end}}</select>
            </label>
            <label>Показник
                <select name="param">
                    {{range .Params}}<option value="{{.}}"{{if eq . $.Query.Param}} selected{{end}}>{{.}}</option>
                    {{end}}</select>
            </label>
            <label>Рік від
                <input type="number" name="yearFrom" value="{{.Query.YearFrom}}" min="1981">
            </label>
            <label>Рік до
                <input type="number" name="yearTo" value="{{.Query.YearTo}}" min="1981">
            </label>
            <label>Тиждень від
                <input type="number" name="weekFrom" value="{{.Query.WeekFrom}}" min="1" max="52">
            </label>
            <label>Тиждень до
                <input type="number" name="weekTo" value="{{.Query.WeekTo}}" min="1" max="52">
            </label>
            <label>Сортування
                <select name="sort">
                    <option value="none"{{if eq .Query.Sort "none"}} selected{{end}}>без сортування</option>
                    <option value="asc"{{if eq .Query.Sort "asc"}} selected{{end}}>за зростанням</option>
                    <option value="desc"{{if eq .Query.Sort "desc"}} selected{{end}}>за спаданням</option>
                </select>
            </label>
            <label>Вигляд
                <select name="view">
                    <option value="table"{{if eq .View "table"}} selected{{end}}>таблиця</option>
                    <option value="line"{{if eq .View "line"}} selected{{end}}>графік по тижнях</option>
                    <option value="compare"{{if eq .View "compare"}} selected{{end}}>порівняння років</option>
                </select>
            </label>
            <button type="submit">Застосувати</button>
        </form>
        <form class="fetch-form" method="post" action="/fetch" style="margin-top:12px">
            <button type="submit">Завантажити дані</button>
        </form>

        {{if .Notice}}
        <div class="notice">{{.Notice}}</div>
        {{else if eq .View "table"}}
        <table>
            <thead>
                <tr><th>Область</th><th>Рік</th><th>Тиждень</th><th>SMN</th><th>SMT</th><th>VCI</th><th>TCI</th><th>VHI</th></tr>
            </thead>
            <tbody>
                {{range .Records}}<tr>
                    <td>{{$.Query.Region}}</td>
                    <td>{{.Year}}</td>
                    <td>{{.Week}}</td>
                    <td>{{printf "%.4f" .SMN}}</td>
                    <td>{{printf "%.2f" .SMT}}</td>
                    <td>{{printf "%.2f" .VCI}}</td>
                    <td>{{printf "%.2f" .TCI}}</td>
                    <td>{{printf "%.2f" .VHI}}</td>
                </tr>
                {{end}}</tbody>
        </table>
        {{else}}
        <iframe class="chart" src="{{.ChartURL}}"></iframe>
        {{end}}
    </div>
    <div class="footer">Дані: NOAA STAR · Vegetation Health Index</div>
</body>
</html>
`
