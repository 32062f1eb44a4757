package site

// filterScript drives the topic filters and the year-list search. Filtering
// keys off each card's data-category attribute so it is independent of the
// surrounding DOM structure; the year search is a no-op when the layout has
// no search box.
const filterScript = `
(function(){
  const cats = ['HPC','Quantum','Architecture','Programming Model','Edge/IoT','AI','Applications'];
  const idFor = c => 'filter-' + c.toLowerCase().replace(/[^a-z0-9]/g,'-');

  function applyFilters(){
    const states = {};
    cats.forEach(c=>{
      const cb = document.getElementById(idFor(c));
      states[c] = cb ? cb.checked : true;
    });
    document.querySelectorAll('.card').forEach(card=>{
      const cat = card.getAttribute('data-category');
      const show = (cat && states[cat] !== false);
      card.classList.toggle('hidden', !show);
    });
  }

  cats.forEach(c=>{
    const cb = document.getElementById(idFor(c));
    if(cb){ cb.addEventListener('change', applyFilters); }
  });

  const allBtn = document.getElementById('btnAll');
  const noneBtn = document.getElementById('btnNone');
  if(allBtn) allBtn.addEventListener('click', ()=>{ cats.forEach(c=>{ const cb=document.getElementById(idFor(c)); if(cb){ cb.checked=true; } }); applyFilters(); });
  if(noneBtn) noneBtn.addEventListener('click', ()=>{ cats.forEach(c=>{ const cb=document.getElementById(idFor(c)); if(cb){ cb.checked=false; } }); applyFilters(); });

  applyFilters();

  const ySearch = document.getElementById('yearSearch');
  const yLinks = Array.from(document.querySelectorAll('.years-list a'));
  function filterYears(){
    const q = (ySearch && ySearch.value || '').trim().toLowerCase();
    yLinks.forEach(a=>{
      const txt = a.getAttribute('data-year') || a.textContent || '';
      a.style.display = (!q || txt.toLowerCase().indexOf(q) !== -1) ? '' : 'none';
    });
  }
  if(ySearch){ ySearch.addEventListener('input', filterYears); }
})();
`

// stickyTemplate is the default layout: sticky header and filter rows, a
// left sticky sidebar with a searchable year list, one-column content.
const stickyTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
:root{--bg:#ffffff;--fg:#111827;--muted:#6b7280;--border:#e5e7eb;--header-h:64px;--filters-h:120px}
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Helvetica,Arial,sans-serif;background:#fff;color:#111827}

header{position:sticky;top:0;background:#fff;border-bottom:1px solid var(--border);z-index:1000}
header .wrap{display:flex;flex-wrap:wrap;gap:12px;align-items:center;padding:12px 16px}

.filters{position:sticky;top:var(--header-h);z-index:999;display:flex;flex-wrap:wrap;gap:10px;align-items:center;padding:10px 16px;border-bottom:1px solid var(--border);background:#fff}
.filter{display:inline-flex;align-items:center;gap:6px;margin:4px}
.filter input{position:absolute;left:-9999px;top:-9999px}
.filter label{display:inline-block;padding:8px 12px;border:2px solid var(--border);border-radius:999px;background:#fff;color:#111827;cursor:pointer;font-weight:600}
.filter input:checked + label{color:#fff}
.actions{display:inline-flex;gap:8px;margin-left:auto}
.actions button{padding:8px 12px;border:1px solid var(--border);border-radius:8px;background:#fff;color:#111827;cursor:pointer}
.actions button:hover{background:#f9fafb}

main{display:grid;grid-template-columns:280px 1fr;gap:20px;padding:20px}
@media(max-width:900px){main{grid-template-columns:1fr}aside{order:2}}

aside{position:sticky;top:calc(var(--header-h) + var(--filters-h));align-self:start}
.aside-card{background:#fff;border:1px solid var(--border);border-radius:12px;padding:12px}
.aside-card h3{margin:8px 0;font-size:14px;color:#6b7280}
.year-search{width:100%;padding:8px 10px;border:1px solid var(--border);border-radius:8px;margin-bottom:8px}
.years-list{max-height:calc(100vh - var(--header-h) - var(--filters-h) - 140px); overflow-y:auto; padding-right:6px}
.years-list a{display:flex;align-items:center;justify-content:space-between;padding:6px 8px;color:#111827;text-decoration:none;border-radius:6px}
.years-list a:hover{background:#f9fafb}
.years-list .badge{margin-left:10px}

.section{border:1px solid var(--border);border-radius:12px;background:#fff;margin-bottom:16px}
.section label.year-toggle{display:flex;align-items:center;justify-content:space-between;padding:10px 12px;font-weight:600;font-size:18px;border-bottom:1px dashed var(--border);cursor:pointer}
.section .content{padding:6px 12px}
.section input[type=checkbox].year{display:none}
.section input.year:not(:checked) ~ .content{display:none}

.card{border:1px solid var(--border);border-radius:12px;padding:12px;margin:12px 0;box-shadow:0 1px 2px rgba(0,0,0,0.04);background:#fff}
.card .title{font-weight:600;font-size:16px}
.card .meta{font-size:13px;color:#6b7280;margin-top:6px}
.chips{margin-top:6px;display:flex;gap:8px;flex-wrap:wrap}
.chip{font-size:12px;background:#f3f4f6;border:1px solid var(--border);color:#374151;padding:4px 8px;border-radius:999px}

.card input.bib{display:none}
.card input.bib + label.biblabel{font-size:12px;color:#111827;text-decoration:underline;cursor:pointer}
.card input.bib:not(:checked) + label.biblabel + pre.bib{display:none}
.card input.bib:checked + label.biblabel + pre.bib{display:block}
pre.bib{background:#f9fafb;color:#1f2937;border-radius:8px;padding:10px;overflow:auto;border:1px solid var(--border)}

.badge{background:#f3f4f6;border:1px solid var(--border);padding:2px 6px;border-radius:6px;font-size:12px;margin-left:6px}
#toTop{position:fixed;bottom:20px;right:20px;background:#111827;color:#fff;border:none;border-radius:999px;padding:10px 14px;box-shadow:0 2px 6px rgba(0,0,0,0.2);}
#toTop:hover{opacity:.9}
.hidden{display:none !important}
{{.TopicCSS}}
  </style>
</head>
<body id="top">
<header>
  <div class="wrap">
    <strong>Topic filters</strong>
    <span class="actions">
      <button id="btnAll">All</button>
      <button id="btnNone">None</button>
    </span>
  </div>
</header>
<div class="filters" aria-label="Topic filters">
{{range .Categories}}  <span class="filter"><input type="checkbox" id="filter-{{.Slug}}" checked><label for="filter-{{.Slug}}" data-cat="{{.Label}}">{{.Label}}</label></span>
{{end}}</div>
<main>
  <aside>
    <div class="aside-card">
      <h3>Jump to year</h3>
      <input id="yearSearch" class="year-search" type="search" placeholder="Filter years…" aria-label="Filter years" />
      <div class="years-list">
{{range .Sections}}        <a href="#y-{{.Year}}" data-year="{{.Year}}">{{.Year}} <span class="badge">{{len .Entries}}</span></a>
{{end}}      </div>
    </div>
  </aside>
  <div>
{{range .Sections}}    <section class="section" id="y-{{.Year}}">
      <input type="checkbox" id="cb-{{.Year}}" class="year" checked>
      <label for="cb-{{.Year}}" class="year-toggle">{{.Year}} <span class="badge">{{len .Entries}}</span></label>
      <div class="content">
{{range .Entries}}        <div class="cat-{{.CatClass}}">
        <article class="card" data-year="{{.Year}}" data-type="{{.Type}}" data-category="{{.Category}}">
          <div class="title">{{.Title}}</div>
          <div class="meta">{{.Authors}}{{if .Meta}} • {{.Meta}}{{end}}</div>
          <div class="chips">
            <span class="chip cat">{{.Category}}</span>
            <span class="chip">Key: {{.Key}}</span>
            <span class="chip">{{.Type}}</span>
          </div>
          <input type="checkbox" id="{{.BibID}}" class="bib" />
          <label for="{{.BibID}}" class="biblabel">Show BibTeX</label>
          <pre class="bib">{{.Raw}}</pre>
        </article>
        </div>
{{end}}      </div>
    </section>
{{end}}  </div>
</main>
<a href="#top" id="toTop" title="Back to top">Top</a>
<div class="footer">Auto-generated from BibTeX.</div>
<script>
{{.FilterJS}}
</script>
</body>
</html>
`

// collapsibleTemplate is the older layout: a plain sidebar with year links
// and collapsible year sections, filters scrolling with the page.
const collapsibleTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
:root{--bg:#ffffff;--fg:#111827;--muted:#6b7280;--border:#e5e7eb}
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Helvetica,Arial,sans-serif;background:#fff;color:#111827}
header{position:sticky;top:0;background:#fff;border-bottom:1px solid var(--border);z-index:10}
header .wrap{display:flex;flex-wrap:wrap;gap:12px;align-items:center;padding:12px 16px}
.filters{display:flex;flex-wrap:wrap;gap:10px;align-items:center;padding:10px 16px;border-bottom:1px solid var(--border);background:#fff}
.filter{display:inline-flex;align-items:center;gap:6px;margin:4px}
.filter input{position:absolute;left:-9999px;top:-9999px}
.filter label{display:inline-block;padding:8px 12px;border:2px solid var(--border);border-radius:999px;background:#fff;color:#111827;cursor:pointer;font-weight:600}
.filter input:checked + label{color:#fff}
.actions{display:inline-flex;gap:8px;margin-left:12px}
.actions button{padding:8px 12px;border:1px solid var(--border);border-radius:8px;background:#fff;color:#111827;cursor:pointer}
.actions button:hover{background:#f9fafb}
main{display:grid;grid-template-columns:260px 1fr;gap:20px;padding:20px}
@media(max-width:900px){main{grid-template-columns:1fr}aside{order:2}}
aside{position:sticky;top:136px;align-self:start}
.aside-card{background:#fff;border:1px solid var(--border);border-radius:12px;padding:12px}
.aside-card h3{margin:8px 0;font-size:14px;color:#6b7280}
.aside-card a{display:block;padding:6px 8px;color:#111827;text-decoration:none;border-radius:6px}
.aside-card a:hover{background:#f9fafb}
.section{margin-bottom:16px;border:1px solid var(--border);border-radius:12px;background:#fff}
.section label.year-toggle{display:flex;align-items:center;justify-content:space-between;padding:10px 12px;font-weight:600;font-size:18px;border-bottom:1px dashed var(--border);cursor:pointer}
.section .content{padding:6px 12px}
.section input[type=checkbox].year{display:none}
.section input.year:not(:checked) ~ .content{display:none}
.card{border:1px solid var(--border);border-radius:12px;padding:12px;margin:12px 0;box-shadow:0 1px 2px rgba(0,0,0,0.04);background:#fff}
.card .title{font-weight:600;font-size:16px}
.card .meta{font-size:13px;color:#6b7280;margin-top:6px}
.chips{margin-top:6px;display:flex;gap:8px;flex-wrap:wrap}
.chip{font-size:12px;background:#f3f4f6;border:1px solid var(--border);color:#374151;padding:4px 8px;border-radius:999px}
.card input.bib{display:none}
.card input.bib + label.biblabel{font-size:12px;color:#111827;text-decoration:underline;cursor:pointer}
.card input.bib:not(:checked) + label.biblabel + pre.bib{display:none}
.card input.bib:checked + label.biblabel + pre.bib{display:block}
pre.bib{background:#f9fafb;color:#1f2937;border-radius:8px;padding:10px;overflow:auto;border:1px solid var(--border)}
.badge{background:#f3f4f6;border:1px solid var(--border);padding:2px 6px;border-radius:6px;font-size:12px;margin-left:6px}
#toTop{position:fixed;bottom:20px;right:20px;background:#111827;color:#fff;border:none;border-radius:999px;padding:10px 14px;box-shadow:0 2px 6px rgba(0,0,0,0.2);}
#toTop:hover{opacity:.9}
.hidden{display:none !important}
{{.TopicCSS}}
  </style>
</head>
<body id="top">
<header>
  <div class="wrap">
    <strong>Topic filters</strong>
    <span class="actions">
      <button id="btnAll">All</button>
      <button id="btnNone">None</button>
    </span>
  </div>
</header>
<div class="filters" aria-label="Topic filters">
{{range .Categories}}  <span class="filter"><input type="checkbox" id="filter-{{.Slug}}" checked><label for="filter-{{.Slug}}" data-cat="{{.Label}}">{{.Label}}</label></span>
{{end}}</div>
<main>
  <aside>
    <div class="aside-card">
      <h3>Jump to year</h3>
{{range .Sections}}      <a href="#y-{{.Year}}">{{.Year}} <span class="badge">{{len .Entries}}</span></a>
{{end}}    </div>
  </aside>
  <div>
{{range .Sections}}    <section class="section" id="y-{{.Year}}">
      <input type="checkbox" id="cb-{{.Year}}" class="year" checked>
      <label for="cb-{{.Year}}" class="year-toggle">{{.Year}} <span class="badge">{{len .Entries}}</span></label>
      <div class="content">
{{range .Entries}}        <div class="cat-{{.CatClass}}">
        <article class="card" data-year="{{.Year}}" data-type="{{.Type}}" data-category="{{.Category}}">
          <div class="title">{{.Title}}</div>
          <div class="meta">{{.Authors}}{{if .Meta}} • {{.Meta}}{{end}}</div>
          <div class="chips">
            <span class="chip cat">{{.Category}}</span>
            <span class="chip">Key: {{.Key}}</span>
            <span class="chip">{{.Type}}</span>
          </div>
          <input type="checkbox" id="{{.BibID}}" class="bib" />
          <label for="{{.BibID}}" class="biblabel">Show BibTeX</label>
          <pre class="bib">{{.Raw}}</pre>
        </article>
        </div>
{{end}}      </div>
    </section>
{{end}}  </div>
</main>
<a href="#top" id="toTop" title="Back to top">Top</a>
<div class="footer">Auto-generated from BibTeX.</div>
<script>
{{.FilterJS}}
</script>
</body>
</html>
`
