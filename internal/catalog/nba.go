package catalog

import "hoops-trivia/internal/domain"

func logoURL(nbaID string) string {
	return "https://cdn.nba.com/logos/nba/" + nbaID + "/global/L/logo.svg"
}

var builtinTeams = []domain.Team{
	{ID: "lakers", Name: "Lakers", City: "Los Angeles", FullName: "Los Angeles Lakers", Abbreviation: "LAL", LogoURL: logoURL("1610612747"), PrimaryColor: "#552583"},
	{ID: "celtics", Name: "Celtics", City: "Boston", FullName: "Boston Celtics", Abbreviation: "BOS", LogoURL: logoURL("1610612738"), PrimaryColor: "#007A33"},
	{ID: "warriors", Name: "Warriors", City: "Golden State", FullName: "Golden State Warriors", Abbreviation: "GSW", LogoURL: logoURL("1610612744"), PrimaryColor: "#1D428A"},
	{ID: "bulls", Name: "Bulls", City: "Chicago", FullName: "Chicago Bulls", Abbreviation: "CHI", LogoURL: logoURL("1610612741"), PrimaryColor: "#CE1141"},
	{ID: "heat", Name: "Heat", City: "Miami", FullName: "Miami Heat", Abbreviation: "MIA", LogoURL: logoURL("1610612748"), PrimaryColor: "#98002E"},
	{ID: "nets", Name: "Nets", City: "Brooklyn", FullName: "Brooklyn Nets", Abbreviation: "BKN", LogoURL: logoURL("1610612751"), PrimaryColor: "#000000"},
	{ID: "knicks", Name: "Knicks", City: "New York", FullName: "New York Knicks", Abbreviation: "NYK", LogoURL: logoURL("1610612752"), PrimaryColor: "#006BB6"},
	{ID: "sixers", Name: "76ers", City: "Philadelphia", FullName: "Philadelphia 76ers", Abbreviation: "PHI", LogoURL: logoURL("1610612755"), PrimaryColor: "#006BB6"},
	{ID: "raptors", Name: "Raptors", City: "Toronto", FullName: "Toronto Raptors", Abbreviation: "TOR", LogoURL: logoURL("1610612761"), PrimaryColor: "#CE1141"},
	{ID: "bucks", Name: "Bucks", City: "Milwaukee", FullName: "Milwaukee Bucks", Abbreviation: "MIL", LogoURL: logoURL("1610612749"), PrimaryColor: "#00471B"},
	{ID: "mavericks", Name: "Mavericks", City: "Dallas", FullName: "Dallas Mavericks", Abbreviation: "DAL", LogoURL: logoURL("1610612742"), PrimaryColor: "#00538C"},
	{ID: "spurs", Name: "Spurs", City: "San Antonio", FullName: "San Antonio Spurs", Abbreviation: "SAS", LogoURL: logoURL("1610612759"), PrimaryColor: "#C4CED4"},
	{ID: "rockets", Name: "Rockets", City: "Houston", FullName: "Houston Rockets", Abbreviation: "HOU", LogoURL: logoURL("1610612745"), PrimaryColor: "#CE1141"},
	{ID: "suns", Name: "Suns", City: "Phoenix", FullName: "Phoenix Suns", Abbreviation: "PHX", LogoURL: logoURL("1610612756"), PrimaryColor: "#1D1160"},
	{ID: "nuggets", Name: "Nuggets", City: "Denver", FullName: "Denver Nuggets", Abbreviation: "DEN", LogoURL: logoURL("1610612743"), PrimaryColor: "#0E2240"},
	{ID: "clippers", Name: "Clippers", City: "Los Angeles", FullName: "Los Angeles Clippers", Abbreviation: "LAC", LogoURL: logoURL("1610612746"), PrimaryColor: "#C8102E"},
	{ID: "thunder", Name: "Thunder", City: "Oklahoma City", FullName: "Oklahoma City Thunder", Abbreviation: "OKC", LogoURL: logoURL("1610612760"), PrimaryColor: "#007AC1"},
	{ID: "timberwolves", Name: "Timberwolves", City: "Minnesota", FullName: "Minnesota Timberwolves", Abbreviation: "MIN", LogoURL: logoURL("1610612750"), PrimaryColor: "#0C2340"},
	{ID: "pelicans", Name: "Pelicans", City: "New Orleans", FullName: "New Orleans Pelicans", Abbreviation: "NOP", LogoURL: logoURL("1610612740"), PrimaryColor: "#0C2340"},
	{ID: "grizzlies", Name: "Grizzlies", City: "Memphis", FullName: "Memphis Grizzlies", Abbreviation: "MEM", LogoURL: logoURL("1610612763"), PrimaryColor: "#5D76A9"},
}

var builtinPlayers = []domain.Player{
	{Name: "LeBron James", TeamID: "lakers", JerseyNumber: 23, Position: "SF"},
	{Name: "Anthony Davis", TeamID: "lakers", JerseyNumber: 3, Position: "PF"},
	{Name: "Jayson Tatum", TeamID: "celtics", JerseyNumber: 0, Position: "SF"},
	{Name: "Jaylen Brown", TeamID: "celtics", JerseyNumber: 7, Position: "SG"},
	{Name: "Stephen Curry", TeamID: "warriors", JerseyNumber: 30, Position: "PG"},
	{Name: "Klay Thompson", TeamID: "warriors", JerseyNumber: 11, Position: "SG"},
	{Name: "Zach LaVine", TeamID: "bulls", JerseyNumber: 8, Position: "SG"},
	{Name: "DeMar DeRozan", TeamID: "bulls", JerseyNumber: 11, Position: "SF"},
	{Name: "Jimmy Butler", TeamID: "heat", JerseyNumber: 22, Position: "SF"},
	{Name: "Bam Adebayo", TeamID: "heat", JerseyNumber: 13, Position: "C"},
	{Name: "Mikal Bridges", TeamID: "nets", JerseyNumber: 1, Position: "SF"},
	{Name: "Jalen Brunson", TeamID: "knicks", JerseyNumber: 11, Position: "PG"},
	{Name: "Julius Randle", TeamID: "knicks", JerseyNumber: 30, Position: "PF"},
	{Name: "Joel Embiid", TeamID: "sixers", JerseyNumber: 21, Position: "C"},
	{Name: "Tyrese Maxey", TeamID: "sixers", JerseyNumber: 0, Position: "PG"},
	{Name: "Giannis Antetokounmpo", TeamID: "bucks", JerseyNumber: 34, Position: "PF"},
	{Name: "Damian Lillard", TeamID: "bucks", JerseyNumber: 0, Position: "PG"},
	{Name: "Luka Doncic", TeamID: "mavericks", JerseyNumber: 77, Position: "PG"},
	{Name: "Kyrie Irving", TeamID: "mavericks", JerseyNumber: 11, Position: "PG"},
	{Name: "Nikola Jokic", TeamID: "nuggets", JerseyNumber: 15, Position: "C"},
	{Name: "Jamal Murray", TeamID: "nuggets", JerseyNumber: 27, Position: "PG"},
	{Name: "Kevin Durant", TeamID: "suns", JerseyNumber: 35, Position: "SF"},
	{Name: "Devin Booker", TeamID: "suns", JerseyNumber: 1, Position: "SG"},
	{Name: "Shai Gilgeous-Alexander", TeamID: "thunder", JerseyNumber: 2, Position: "PG"},
	{Name: "Chet Holmgren", TeamID: "thunder", JerseyNumber: 7, Position: "C"},
	{Name: "Anthony Edwards", TeamID: "timberwolves", JerseyNumber: 5, Position: "SG"},
	{Name: "Karl-Anthony Towns", TeamID: "timberwolves", JerseyNumber: 32, Position: "C"},
	{Name: "Ja Morant", TeamID: "grizzlies", JerseyNumber: 12, Position: "PG"},
	{Name: "Kawhi Leonard", TeamID: "clippers", JerseyNumber: 2, Position: "SF"},
	{Name: "Paul George", TeamID: "clippers", JerseyNumber: 13, Position: "SF"},
	{Name: "Victor Wembanyama", TeamID: "spurs", JerseyNumber: 1, Position: "C"},
}
