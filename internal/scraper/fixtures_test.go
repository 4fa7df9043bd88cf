package scraper

// Static page snippets mirroring the stats site's markup.

const playerSearchHTML = `
<html><body>
<div class="search-result">
  <h2>Equipos</h2>
  <table><tbody>
    <tr><th>Equipos</th></tr>
    <tr><td><a href="/Teams/55/Show/Test-FC">Test FC</a></td></tr>
  </tbody></table>
</div>
<div class="search-result">
  <h2>Jugadores</h2>
  <table><tbody>
    <tr><th>Jugadores</th></tr>
    <tr><td><a href="/Players/1234/Show/Test-Player">Test Player</a></td></tr>
  </tbody></table>
</div>
</body></html>`

const emptySearchHTML = `
<html><body>
<div class="search-result"><h2>Sin resultados</h2></div>
</body></html>`

const playerPageHTML = `
<html><body>
<div class="col12-lg-10 col12-m-10 col12-s-9 col12-xs-8">
  <div class="col12-lg-6"><span class="info-label">Nombre:</span> Test Player</div>
  <div class="col12-lg-6"><span class="info-label">Equipo Actual:</span> Test FC</div>
  <div class="col12-lg-6"><span class="info-label">Número de Dorsal:</span> 9</div>
  <div class="col12-lg-6"><span class="info-label">Edad:</span> 27 años</div>
  <div class="col12-lg-6"><span class="info-label">Altura:</span> 182cm</div>
  <div class="col12-lg-6"><span class="info-label">Nacionalidad:</span> España</div>
  <div class="col12-lg-6"><span class="info-label">Posiciones:</span>
    <span><span>Delantero</span> <span>(C)</span></span>
  </div>
</div>
<a href="/Players/1234/MatchStatistics/Test-Player">Estadísticas del Partido</a>
</body></html>`

const statsPageHTML = `
<html><body>
<table><tbody id="player-table-statistics-body">
<tr>
  <td><a class="player-match-link">Barcelona
2-1</a><span class="scoreline">2-1</span></td>
  <td>La Liga</td>
  <td>15/09/2024</td>
  <td>Delantero</td>
  <td>90'</td>
  <td>2</td>
  <td>1</td>
  <td>1</td>
  <td>0</td>
  <td>5</td>
  <td>87,5%</td>
  <td>3</td>
  <td>8.7</td>
</tr>
<tr>
  <td><a class="player-match-link">Sevilla
0-0</a><span class="scoreline">0-0</span></td>
  <td>La Liga</td>
  <td>22/09/2024</td>
  <td>Delantero</td>
  <td>0</td>
  <td>0</td>
  <td>0</td>
  <td>0</td>
  <td>0</td>
  <td>0</td>
  <td></td>
  <td>0</td>
  <td>0</td>
</tr>
</tbody></table>
</body></html>`

const teamSearchHTML = `
<html><body>
<div class="search-result">
  <h2>Equipos</h2>
  <table><tbody>
    <tr><th>Equipos</th></tr>
    <tr><td><a href="/Teams/55/Show/Test-FC">Test FC</a></td></tr>
  </tbody></table>
</div>
</body></html>`

const teamPageHTML = `
<html><body>
<h1 class="team-header">Test FC</h1>
<table><tbody id="player-table-statistics-body">
<tr>
  <td>
    <a class="player-link"><span class="iconize-icon-left">Test Player</span></a>
    <span class="player-meta-data">27</span>
    <span class="player-meta-data">Delantero,</span>
  </td>
  <td>9</td>
  <td>182</td>
  <td>75</td>
  <td>30</td>
  <td>2700</td>
  <td>12</td>
  <td>5</td>
  <td>3</td>
  <td>0</td>
  <td>3.2</td>
  <td>85%</td>
  <td>1.8</td>
  <td>4</td>
  <td>7.45</td>
</tr>
</tbody></table>
</body></html>`
