package chat

// Greeting is the assistant message every new session opens with.
const Greeting = "Hej! Jeg er her for at hjælpe med at besvare dine spørgsmål om bedøvelse og dit kommende indgreb. Jeg kan give generel information, så du kan føle dig bedre forberedt og informeret.\n\nHusk, at denne chat kun er til undervisnings- og informationsformål og ikke erstatter medicinsk rådgivning fra dit sundhedsteam. Ved specifikke bekymringer om din situation bør du altid tale med din anæstesilæge eller operationsteam.\n\nHvordan kan jeg hjælpe dig i dag?"

// SuggestedQuestions are the starter prompts shown while a session has only
// the greeting.
var SuggestedQuestions = []string{
	"Hvad skal jeg gøre for at forberede mig til min operation?",
	"Hvilke risici er der ved fuld bedøvelse?",
	"Hvor lang tid tager det at vågne efter bedøvelse?",
	"Må jeg spise eller drikke før mit indgreb?",
	"Hvilke bivirkninger kan jeg forvente?",
	"Vil jeg mærke smerte under indgrebet?",
}

// Responses is the pre-authored response body for each category. Content is
// a configuration asset, not logic; the closed Category key keeps the table
// exhaustiveness-checkable.
var Responses = map[Category]string{
	CategoryPreparation: "For at forberede dig til din operation:\n\n• Spis eller drik ikke noget i 8 timer før dit indgreb (medmindre du får andre instruktioner)\n• Tag din faste medicin med en lille slurk vand (tjek med din læge først)\n• Fjern alle smykker, kontaktlinser og tandproteser\n• Brug behageligt, løstsiddende tøj\n• Sørg for, at nogen kan køre dig hjem\n• Følg eventuelle specifikke instruktioner fra dit operationsteam\n\nDin anæstesilæge vil gennemgå det hele med dig inden indgrebet.",

	CategoryRisks: "Fuld bedøvelse er meget sikker for de fleste patienter. Almindelige, midlertidige effekter inkluderer:\n\n• Kvalme eller opkast (kan behandles med medicin)\n• Ondt i halsen fra vejrtrækningsrør\n• Træthed og forvirring i nogle timer\n• Let hæshed\n\nAlvorlige komplikationer er sjældne, men kan inkludere:\n• Allergiske reaktioner\n• Vejrtrækningsbesvær\n• Ændringer i blodtryk eller hjerterytme\n\nDin anæstesilæge overvåger dig nøje under hele indgrebet og justerer medicinen efter behov for at holde dig sikker. De vil tale med dig om dine specifikke risikofaktorer under din præoperative vurdering.",

	CategoryRecovery: "De fleste patienter begynder at vågne inden for 5-15 minutter efter bedøvelsen stoppes, men fuld restitution tager længere tid:\n\n• Første opvågning: 5-15 minutter\n• Klar nok til at svare: 30-60 minutter\n• Føler sig mere normal: 4-6 timer\n• Fuld restitution: 24 timer\n\nDen præcise tid varierer afhængigt af:\n• Type og varighed af operation\n• Hvilken medicin der anvendes\n• Din alder og generelle helbred\n• Din individuelle reaktion på bedøvelse\n\nDu vil blive overvåget tæt i opvågningsafsnittet, indtil du er stabil og har det godt.",

	CategoryFasting: "**Fastevejledning** (typisk):\n\n**Spis eller drik IKKE:**\n• 8 timer før operation ved fast føde\n• 6 timer før ved lette måltider\n• 2 timer før ved klare væsker (vand, sort kaffe, klar juice)\n\n**Hvorfor er dette vigtigt?**\nBedøvelse afslapper dine muskler, inklusive dem der forhindrer maveindhold i at komme op. En tom mave mindsker risikoen for aspiration (maveindhold der kommer ned i lungerne), hvilket kan være farligt.\n\n**Vigtigt:**\nFølg altid de specifikke instruktioner fra dit operationsteam, da retningslinjer kan variere afhængigt af dit indgreb og din sygehistorie. Hvis du ved et uheld spiser eller drikker, så informér din anæstesilæge med det samme.",

	CategorySideEffects: "Almindelige bivirkninger efter bedøvelse inkluderer:\n\n**De første timer:**\n• Træthed og døsighed\n• Kvalme eller opkast\n• Ondt i halsen\n• Tør mund\n• Følelse af kulde eller rysten\n• Forvirring eller hukommelseshuller\n\n**De næste 24-48 timer:**\n• Let svimmelhed\n• Hovedpine\n• Muskelømhed\n• Svært ved at koncentrere sig\n\n**De fleste bivirkninger:**\n• Er midlertidige og milde\n• Forsvinder inden for 24-48 timer\n• Kan håndteres med medicin\n• Overvåges tæt af sundhedspersonalet\n\nKontakt din sundhedsudbyder, hvis du oplever alvorlige symptomer eller noget bekymrende efter du er kommet hjem.",

	CategoryPain: "**Under indgrebet:**\nNej, du vil IKKE mærke smerte under operationen. Bedøvelse sikrer, at du er helt bevidstløs og smertefri. Du vil ikke mærke, se, høre eller huske noget.\n\n**Hvordan virker det:**\n• Fuld bedøvelse bringer dig i en dyb søvn\n• Smertestillende medicin gives løbende\n• Dine vitale værdier overvåges konstant\n• Anæstesilægen justerer medicinen efter behov\n\n**Efter indgrebet:**\nDu kan opleve smerte, når bedøvelsen aftager, men:\n• Smertestillende gives, før du vågner\n• Dit smerteniveau vurderes regelmæssigt\n• Du kan få ekstra medicin efter behov\n• Smertelindring er en prioritet for dit behandlingsteam\n\nTøv aldrig med at sige til sygeplejerskerne, hvis du har smerter - der findes mange effektive muligheder for at holde dig komfortabel.",

	CategoryDefault: "Jeg forstår, at du har spørgsmål om din bedøvelse og dit indgreb. Jeg kan give generel information, men jeg kan ikke erstatte den personlige behandling og rådgivning fra dit sundhedsteam.\n\nFor specifikke spørgsmål om din situation, kan du:\n• Tale med din anæstesilæge ved din præoperative samtale\n• Ringe til dit operationsteams afdeling\n• Stille spørgsmål på dagen for dit indgreb\n\nEr der et generelt emne om bedøvelse, jeg kan hjælpe med at forklare? Du kan også vælge blandt de foreslåede spørgsmål nedenfor.",
}

// Respond returns the authored body for the message's category.
func Respond(message string) string {
	return Responses[Classify(message)]
}
