package patient

import "time"

// DefaultScheduleDate is the calendar day the dashboard opens on; most of the
// demo procedures are scheduled for it.
var DefaultScheduleDate = time.Date(2026, time.January, 24, 0, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedRecords returns the fabricated demo dataset: six pre-assessment
// records spanning ASA 1-4 with Danish clinical narrative.
func SeedRecords() []*Record {
	return []*Record{
		{
			ID:                 "1",
			CPRNumber:          "010190-1234",
			FirstName:          "Anna",
			LastName:           "Hansen",
			Age:                35,
			Gender:             GenderFemale,
			ASAScore:           1,
			ASAExplanation:     "Rask patient uden systemisk sygdom",
			ScheduledProcedure: "Laparoskopisk kolecystektomi",
			ProcedureDate:      day(2026, time.January, 24),
			ProcedureTime:      "08:00",
			BMI:                23.5,
			SmokingStatus:      SmokingNever,
			Comorbidities:      []string{},
			RiskIndicators:     []RiskIndicator{},
			AISummary: "Rask 35-årig kvinde planlagt til elektiv laparoskopisk kolecystektomi. " +
				"Ingen væsentlig sygehistorie. Normal BMI, ikke-ryger. Ingen kontraindikationer for anæstesi identificeret.",
			ModelConfidence: 0.95,
			AIExplanation: []ExplanationFactor{
				{Factor: "Alder", Weight: 0.15, Impact: "Lav risiko - optimal aldersgruppe"},
				{Factor: "BMI", Weight: 0.20, Impact: "Lav risiko - normal vægt"},
				{Factor: "Komorbiditeter", Weight: 0.40, Impact: "Lav risiko - ingen kroniske tilstande"},
				{Factor: "Rygestatus", Weight: 0.15, Impact: "Lav risiko - ikke-ryger"},
				{Factor: "Indgrebstype", Weight: 0.10, Impact: "Lav risiko - rutineindgreb"},
			},
			FullHistory: "Patienten præsenterer sig med symptomgivende galdesten. Nylig ultralyd bekræfter galdesten. " +
				"Ingen tidligere operationer. Ingen familiehistorie med anæstesikomplikationer.",
			Allergies:          []string{"Ingen kendte"},
			CurrentMedications: []string{},
			Notes:              "Patienten er bekymret for bedøvelse - beroliget og fået udleveret informationsmateriale.",
		},
		{
			ID:                 "2",
			CPRNumber:          "150565-5678",
			FirstName:          "Erik",
			LastName:           "Nielsen",
			Age:                60,
			Gender:             GenderMale,
			ASAScore:           3,
			ASAExplanation:     "Svær systemisk sygdom, som ikke er livstruende",
			ScheduledProcedure: "Total hoftealloplastik",
			ProcedureDate:      day(2026, time.January, 24),
			ProcedureTime:      "08:30",
			BMI:                31.2,
			SmokingStatus:      SmokingFormer,
			Comorbidities:      []string{"Type 2-diabetes", "Hypertension", "Artrose"},
			RiskIndicators: []RiskIndicator{
				{Name: "Forhøjet HbA1c", Value: "7.8%", Severity: SeverityMedium},
				{Name: "Blodtryk", Value: "145/92", Severity: SeverityMedium},
				{Name: "BMI", Value: "31.2", Severity: SeverityMedium},
			},
			AISummary: "60-årig mand med kontrolleret type 2-diabetes og hypertension. BMI svarer til fedme grad I. " +
				"Tidligere ryger (stoppede for 5 år siden). Planlagt til elektiv total hoftealloplastik. " +
				"Øget perioperativ risiko pga. flere komorbiditeter, men tilstandene er tilstrækkeligt kontrollerede.",
			ModelConfidence: 0.88,
			AIExplanation: []ExplanationFactor{
				{Factor: "Alder", Weight: 0.15, Impact: "Moderat risiko - højere alder"},
				{Factor: "BMI", Weight: 0.20, Impact: "Moderat risiko - fedme grad I"},
				{Factor: "Komorbiditeter", Weight: 0.40, Impact: "Moderat-høj risiko - diabetes og hypertension"},
				{Factor: "Rygestatus", Weight: 0.15, Impact: "Lav risiko - stoppede for 5+ år siden"},
				{Factor: "Indgrebstype", Weight: 0.10, Impact: "Moderat risiko - større ortopædkirurgi"},
			},
			FullHistory: "Progredierende artrose i højre hofte med nedsat mobilitet. Diabetes diagnosticeret for 8 år siden, " +
				"behandles med metformin. Hypertension kontrolleret med ACE-hæmmer. Ingen tidligere anæstesikomplikationer. " +
				"Arbejdskapacitet begrænset af hoftesmerter.",
			Allergies:          []string{"Penicillin (udslæt)"},
			CurrentMedications: []string{"Metformin 1000mg x 2", "Lisinopril 10mg dagligt", "Aspirin 81mg dagligt"},
			Notes: "Kardiologisk vurdering foreligger. Fortsæt aspirin perioperativt efter ortopædkirurgisk protokol. " +
				"Pause metformin på operationsmorgenen.",
		},
		{
			ID:                 "3",
			CPRNumber:          "230445-9101",
			FirstName:          "Maria",
			LastName:           "Andersen",
			Age:                81,
			Gender:             GenderFemale,
			ASAScore:           4,
			ASAExplanation:     "Svær systemisk sygdom, som er en konstant trussel mod livet",
			ScheduledProcedure: "Akut operation for femurfraktur",
			ProcedureDate:      day(2026, time.January, 22),
			ProcedureTime:      "14:00",
			BMI:                21.8,
			SmokingStatus:      SmokingNever,
			Comorbidities:      []string{"Kongestiv hjertesvigt", "Atrieflimren", "Kronisk nyresygdom stadie 3"},
			RiskIndicators: []RiskIndicator{
				{Name: "Ejektionsfraktion", Value: "35%", Severity: SeverityHigh},
				{Name: "GFR", Value: "42 mL/min", Severity: SeverityHigh},
				{Name: "INR", Value: "2.3", Severity: SeverityMedium},
			},
			AISummary: "81-årig kvinde med nyligt fald og femurfraktur, som kræver akut kirurgisk behandling. " +
				"Betydelig hjertesygdom med nedsat ejektionsfraktion og kronisk atrieflimren. " +
				"Kronisk nyresygdom komplicerer væske- og medicinhåndtering. Høj perioperativ risiko, men operationen er nødvendig.",
			ModelConfidence: 0.82,
			AIExplanation: []ExplanationFactor{
				{Factor: "Alder", Weight: 0.15, Impact: "Høj risiko - høj alder og skrøbelighed"},
				{Factor: "BMI", Weight: 0.20, Impact: "Lav risiko - normal vægt"},
				{Factor: "Komorbiditeter", Weight: 0.40, Impact: "Høj risiko - svær hjerte- og nyresygdom"},
				{Factor: "Rygestatus", Weight: 0.15, Impact: "Lav risiko - ikke-ryger"},
				{Factor: "Indgrebstype", Weight: 0.10, Impact: "Høj risiko - akut operation"},
			},
			FullHistory: "Fald i hjemmet i går aftes. Røntgen bekræfter disloceret collum femoris-fraktur. " +
				"Kendt hjertesvigt med EF 35% (ekkokardiografi for 3 måneder siden). AF i warfarinbehandling. " +
				"Stabil CKD stadie 3. Bor selv med hjemmehjælp.",
			Allergies:          []string{"Kontrastmiddel (anafylaksi)"},
			CurrentMedications: []string{"Warfarin 5mg dagligt", "Furosemid 40mg dagligt", "Metoprolol 50mg x 2", "Digoxin 0.125mg dagligt"},
			Notes: "HØJ RISIKO - Akut case. Warfarin reverseret med vitamin K og FFP. Kardiologi konsulteret. " +
				"Plan for arteriel linje og forsigtig væskebehandling pga. hjertesvigt og CKD. Intensivseng reserveret postoperativt.",
		},
		{
			ID:                 "4",
			CPRNumber:          "050295-2468",
			FirstName:          "Lars",
			LastName:           "Petersen",
			Age:                31,
			Gender:             GenderMale,
			ASAScore:           2,
			ASAExplanation:     "Let systemisk sygdom uden funktionsbegrænsning",
			ScheduledProcedure: "ACL-rekonstruktion",
			ProcedureDate:      day(2026, time.January, 23),
			ProcedureTime:      "09:00",
			BMI:                26.8,
			SmokingStatus:      SmokingNever,
			Comorbidities:      []string{"Kontrolleret astma"},
			RiskIndicators: []RiskIndicator{
				{Name: "Astmakontrol", Value: "Velkontrolleret", Severity: SeverityLow},
			},
			AISummary: "Sund 31-årig mandlig atlet med velkontrolleret astma. Pådraget ACL-ruptur under fodbold. " +
				"Ingen andre medicinske problemer. Minimal anæstesirisiko med passende astmahåndtering.",
			ModelConfidence: 0.93,
			AIExplanation: []ExplanationFactor{
				{Factor: "Alder", Weight: 0.15, Impact: "Lav risiko - ung og sund"},
				{Factor: "BMI", Weight: 0.20, Impact: "Lav risiko - let overvægtig men atletisk"},
				{Factor: "Komorbiditeter", Weight: 0.40, Impact: "Lav risiko - kun mild velkontrolleret astma"},
				{Factor: "Rygestatus", Weight: 0.15, Impact: "Lav risiko - ikke-ryger"},
				{Factor: "Indgrebstype", Weight: 0.10, Impact: "Lav risiko - rutine ortopædkirurgi"},
			},
			FullHistory: "ACL-ruptur under konkurrencefodbold for 6 uger siden. MR bekræfter komplet ruptur. " +
				"Astma siden barndommen, velkontrolleret med inhalationssteroid. Bruger sjældent behovsinhalator. " +
				"Ingen indlæggelser pga. astma. Aktiv livsstil, træner regelmæssigt.",
			Allergies:          []string{"Ingen kendte"},
			CurrentMedications: []string{"Fluticason inhalator 110mcg x 2", "Salbutamol inhalator pn"},
			Notes: "Anbefal at fortsætte inhalationssteroid. Medbring behovsinhalator på operationsdagen. " +
				"Overvej at undgå histaminfrigørende midler.",
		},
		{
			ID:                 "5",
			CPRNumber:          "110778-3579",
			FirstName:          "Sofie",
			LastName:           "Jensen",
			Age:                48,
			Gender:             GenderFemale,
			ASAScore:           2,
			ASAExplanation:     "Let systemisk sygdom uden funktionsbegrænsning",
			ScheduledProcedure: "Thyroidektomi",
			ProcedureDate:      day(2026, time.January, 24),
			ProcedureTime:      "11:30",
			BMI:                28.5,
			SmokingStatus:      SmokingCurrent,
			Comorbidities:      []string{"Hypothyreose", "GERD"},
			RiskIndicators: []RiskIndicator{
				{Name: "Rygning", Value: "15 pakkeår", Severity: SeverityMedium},
				{Name: "BMI", Value: "28.5", Severity: SeverityLow},
			},
			AISummary: "48-årig kvinde med multinodøs struma, som kræver thyroidektomi. " +
				"Nuværende ryger med moderat rygehistorik øger respiratorisk risiko. Hypothyreose er velkontrolleret. " +
				"GERD behandles medicinsk. Samlet set moderat risikoprofil.",
			ModelConfidence: 0.89,
			AIExplanation: []ExplanationFactor{
				{Factor: "Alder", Weight: 0.15, Impact: "Lav risiko - midaldrende"},
				{Factor: "BMI", Weight: 0.20, Impact: "Lav risiko - let overvægtig"},
				{Factor: "Komorbiditeter", Weight: 0.40, Impact: "Lav risiko - velkontrollerede tilstande"},
				{Factor: "Rygestatus", Weight: 0.15, Impact: "Moderat risiko - aktiv ryger"},
				{Factor: "Indgrebstype", Weight: 0.10, Impact: "Moderat risiko - luftvejskirurgi"},
			},
			FullHistory: "Tiltagende multinodøs struma over de seneste 2 år. Let synkebesvær ved store piller. " +
				"Ingen stemmeforandringer. TSH normal på levothyroxin. GERD-symptomer kontrolleret med PPI. " +
				"Rådgivet om rygestop præoperativt, men fortsætter.",
			Allergies:          []string{"Codein (kvalme)"},
			CurrentMedications: []string{"Levothyroxin 100mcg dagligt", "Omeprazol 20mg dagligt"},
			Notes: "Luftvejsvurdering normal, ingen tegn på tracheakompression. Informeret om øget lungerisiko ved rygning. " +
				"Plan aspiration-forebyggelse pga. GERD.",
		},
		{
			ID:                 "6",
			CPRNumber:          "280352-7890",
			FirstName:          "Peter",
			LastName:           "Christensen",
			Age:                74,
			Gender:             GenderMale,
			ASAScore:           3,
			ASAExplanation:     "Svær systemisk sygdom, som ikke er livstruende",
			ScheduledProcedure: "Carotis endarterektomi",
			ProcedureDate:      day(2026, time.January, 25),
			ProcedureTime:      "08:30",
			BMI:                27.3,
			SmokingStatus:      SmokingFormer,
			Comorbidities:      []string{"Koronar hjertesygdom", "Hyperlipidæmi", "Tidligere apopleksi"},
			RiskIndicators: []RiskIndicator{
				{Name: "Carotisstenose", Value: "85% venstre", Severity: SeverityHigh},
				{Name: "Tidligere AMI", Value: "for 3 år siden", Severity: SeverityMedium},
				{Name: "Apopleksi/TIA", Value: "TIA for 6 måneder siden", Severity: SeverityHigh},
			},
			AISummary: "74-årig mand med betydelig kardiovaskulær sygdom, herunder tidligere AMI og TIA. " +
				"Svær carotisstenose kræver endarterektomi. Kompleks hjerte- og cerebrovaskulær risikoprofil " +
				"kræver nøje hæmodynamisk styring.",
			ModelConfidence: 0.85,
			AIExplanation: []ExplanationFactor{
				{Factor: "Alder", Weight: 0.15, Impact: "Moderat-høj risiko - ældre"},
				{Factor: "BMI", Weight: 0.20, Impact: "Lav risiko - normal vægt"},
				{Factor: "Komorbiditeter", Weight: 0.40, Impact: "Høj risiko - betydelig kardiovaskulær sygdom"},
				{Factor: "Rygestatus", Weight: 0.15, Impact: "Lav risiko - stoppet med at ryge"},
				{Factor: "Indgrebstype", Weight: 0.10, Impact: "Høj risiko - carotiskirurgi"},
			},
			FullHistory: "AMI for 3 år siden behandlet med stents i LAD og RCA. God funktionel bedring. " +
				"TIA for 6 måneder siden førte til udredning med påvist svær venstresidig carotisstenose. " +
				"Nylig belastningstest viser tilstrækkelig hjertereserve. I dobbelt trombocythæmmende behandling.",
			Allergies:          []string{"Ingen kendte"},
			CurrentMedications: []string{"Aspirin 81mg dagligt", "Clopidogrel 75mg dagligt", "Atorvastatin 80mg dagligt", "Metoprolol 25mg x 2"},
			Notes: "KOMPLEKS CASE - Kardiologi og neurologi har godkendt. Fortsæt aspirin, pause clopidogrel 5 dage præoperativt. " +
				"Plan for vågen monitorering vs lokalanæstesi med sedation. Stram BT-kontrol er essentiel.",
		},
	}
}

// NewSeededRepo builds the demo repository. Seed data is static and known
// valid, so a failure here is a programming error.
func NewSeededRepo() (*MemRepo, error) {
	return NewMemRepo(SeedRecords())
}
