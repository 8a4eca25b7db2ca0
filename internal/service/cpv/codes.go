package cpv

// cpvCodes maps every supported CPV code to its Norwegian description.
var cpvCodes = map[int]string{
	// Software and Information Systems (48000000 series)
	48000000: "Programvare og informasjonssystemer",
	48100000: "Bransjespesifikk programvare",
	48151000: "Kontrollsystem, datamaskiner",
	48161000: "Administrativt bibliotekssystem",
	48200000: "Nettverks, internett og intranett programvare",
	48300000: "Programvare for dokumentopprettelse, tegning, bilde, tidsplanlegging og produktivitet",
	48322000: "Programvare for grafikk",
	48323000: "Programvare for datamaskinassistert fabrikkering",
	48324000: "Programvare for diagramfremstilling",
	48325000: "Programvare for formutvikling",
	48326000: "Programvare for kartlegging",
	48329000: "Bildebehandlings- og arkiveringssystem",
	48400000: "Programvare relatert til forretningsvirksomhet",
	48445000: "Programvare for håndtering av kundekontakter",
	48500000: "Kommunikasjons- og multimediaprogramvare",
	48600000: "Operativsystemer og programvare for databaser",
	48612000: "Databasestyringssystem",
	48613000: "Elektronisk datastyring",
	48700000: "Programvare verktøy",
	48800000: "Informasjonssystemer og servere",
	48810000: "Informasjonssystemer",
	48814000: "Medisinske informasjonssystemer",
	48900000: "Diverse programvarepakker og computersystemer",
	48910000: "Dataspill, programvare egnet for barn og skjermsparere",
	48911000: "Dataspill",
	48912000: "Programvare egnet for barn",
	48913000: "Skjermsparere",
	48930000: "Trenings- og underholdningsprogramvare",
	48931000: "Treningsprogramvare",
	48932000: "Underholdningsprogramvare",
	48940000: "Programvare til mønsterdesign og kalenderfunksjon",
	48941000: "Programvare til mønsterdesign",
	48942000: "Programvare til kalenderfunksjon",
	48950000: "Skipslokaliseringssystem og høyttaleranlegg",
	48960000: "Driver- og systemprogrampakke",
	48961000: "Ethernett-drivere",
	48962000: "Grafikkortdrivere",
	48970000: "Programvare for printing",
	48971000: "Programvare til oppsett av adressebøker",
	48972000: "Programvare for etikettproduksjon",
	48980000: "Programmeringsspråk og verktøy",
	48981000: "Programpakke for kompileringsverktøy",
	48982000: "Programvare for konfigurasjonshåndtering",
	48983000: "Programvare for programutvikling",
	48984000: "Programvareverktøy for grafisk brukergrensesnitt",
	48985000: "Programmeringsspråk",
	48986000: "Programvare til programtestning",
	48990000: "Programvarepakke for regneark og utvidet funksjonalitet",

	// Telecommunications Services (64000000 series)
	64000000: "Post- og telekommunikasjonstjenester",
	64200000: "Telekommunikasjonstjenester",
	64214400: "Utleie av fastlinjer",

	// Data Services (72000000 series)
	72000000: "Datatjenester: rådgivning, programvareutvikling, internett og systemstøtte",
	72100000: "Rådgivning vedrørende maskinvare",
	72200000: "Programmering av software og rådgivning",
	72212220: "Utviklingstjenester relatert til Programvare for internett og intranett",
	72212222: "Utviklingstjenester relatert til Programvare for webserver",
	72220000: "Systemtjenester og tekniske konsulenttjenester",
	72227000: "Konsulentvirksomhet i forbindelse med integrasjon av programvare",
	72230000: "Utvikling av kundespesifisert programvare",
	72240000: "Systemanalyse og programmering",
	72250000: "System- og støttetjenester",
	72300000: "Datatjenester",
	72310000: "Databehandling",
	72315200: "Drift av datanettverk",
	72320000: "Databasevirksomhet",
	72510000: "Datamaskinrelaterte driftstjenester",
	72514000: "Drift av dataanlegg",

	// Research and Development (73000000 series)
	73000000: "Forsknings- og utviklingsvirksomhet og tilhørende konsulenttjenester",
	73200000: "Konsulentvirksomhet i forbindelse med forskning og utvikling",
	73210000: "Konsulentvirksomhet i forbindelse med forskning",
	73220000: "Konsulentvirksomhet i forbindelse med utvikling",
	73300000: "Planleggingsarbeid og utførelse av forskning og utvikling",

	// Business Services (79000000 series)
	79000000: "Forretningstjenester: lov, reklame, rådgiving, ansettelse, trykking og sikkerhet",
	79311100: "Utforming av undersøkelse",
	79311200: "Utførelse av undersøkelse",
	79311300: "Analyse av undersøkelse",
	79315000: "Sosialforskning",
	79340000: "Reklame og markedsføringstjenester",
	79400000: "Bedriftsrådgivning og administrativ rådgivning og beslektede tjenester",
	79410000: "Bedriftsrådgivning og administrativ rådgivning",
	79411100: "Bedriftsutvikling og rådgivning",
	79412000: "Rådgivning i forbindelse med økonomisk forvaltning",
	79413000: "Rådgivning innen markedsføring",
	79415200: "Konsulentvirksomhet i forbindelse med design",
	79418000: "Rådgivning vedrørende innkjøp",
	79420000: "Ledelsesrelaterte tjenester",
	79421000: "Prosjektledelse, med unntak av bygge- og anleggsarbeid",
	79822500: "Grafisk design",
	79961100: "Reklamefotografering",

	// Education Services (80000000 series)
	80000000: "Tjenester i forbindelse med trening og utdannelse",
	80420000: "E-læringstjenester",
}

// MainCategory is one of the closed set of top-level CPV categories.
type MainCategory struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// mainCategories lists the top-level categories in ascending code order.
var mainCategories = []MainCategory{
	{Code: 48000000, Name: "Software and Information Systems"},
	{Code: 64000000, Name: "Telecommunications Services"},
	{Code: 72000000, Name: "Data Services"},
	{Code: 73000000, Name: "Research and Development"},
	{Code: 79000000, Name: "Business Services"},
	{Code: 80000000, Name: "Education and Exercise"},
}
