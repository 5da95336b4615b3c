// internal/deck/catalog.go
package deck

// The card and prompt catalogs are static configuration. Their invariants
// (non-empty, placeholder arity) are checked once at startup via Validate.

var cards = []Card{
	"the fake news media", "tremendous success", "very smart people", "believe me", "China",
	"the best deal ever", "crooked politicians", "beautiful phone call", "tremendous phone call",
	"perfect conversation", "witch hunt", "total disaster", "complete hoax", "rigged election",
	"stolen votes", "massive fraud", "incredible ratings", "record crowds", "standing ovation",

	"fake polls", "corrupt media", "radical left", "deep state", "swamp creatures",
	"establishment politicians", "career politicians", "sleepy Joe", "crazy Nancy", "shifty Schiff",
	"pencil neck", "low energy", "sad loser", "total lightweight", "third-rate politician",
	"nasty woman", "crooked Hillary", "little Marco", "lyin' Ted", "rocket man",
	"fire and fury", "nuclear button", "very stable genius", "covfefe", "alternative facts",

	"tremendous crowds", "biggest inauguration", "perfect phone call", "no collusion", "total exoneration",
	"presidential harassment", "angry Democrats", "do-nothing Democrats", "radical socialist agenda",
	"America First", "Make America Great Again", "tremendous wall", "beautiful wall", "Mexico will pay",
	"trade war", "tariffs", "unfair trade deals", "renegotiated NAFTA", "incredible economy",

	"best economy ever", "record unemployment", "booming stock market", "tremendous jobs", "beautiful factories",
	"incredible military", "rebuilt military", "Space Force", "tremendous generals", "my generals",
	"beautiful letter", "love letters", "perfect deal", "art of the deal", "tremendous negotiator",

	"billion dollar empire", "luxury properties", "golden escalator", "tremendous wealth", "successful businessman",
	"incredible brand", "world-class hotels", "magnificent towers", "beautiful golf courses", "tremendous resorts",
	"five-star restaurants", "exclusive memberships", "premium locations", "spectacular views", "unmatched quality",
	"tremendous value", "incredible investments", "massive profits", "record-breaking sales", "outstanding performance",

	"reality TV star", "tremendous ratings", "number one show", "incredible viewership", "massive audience",
	"spectacular entertainment", "tremendous production", "award-winning performance", "incredible talent", "natural showman",
	"tremendous charisma", "incredible presence", "commanding performance", "spectacular delivery", "tremendous energy",
	"incredible passion", "outstanding leadership", "tremendous vision", "incredible determination", "unstoppable force",

	"tremendous allies", "incredible partnerships", "beautiful relationships", "perfect diplomacy", "outstanding negotiations",
	"tremendous respect", "incredible influence", "powerful presence", "commanding authority", "tremendous leadership",
	"incredible results", "outstanding achievements", "tremendous progress", "incredible breakthroughs", "spectacular success",
	"beautiful agreements", "perfect understanding", "tremendous cooperation", "incredible unity", "outstanding collaboration",

	"tremendous technology", "incredible innovation", "cutting-edge solutions", "revolutionary advances", "spectacular breakthroughs",
	"outstanding developments", "incredible achievements", "magnificent discoveries", "beautiful inventions",
	"tremendous capabilities", "incredible potential", "spectacular results", "tremendous efficiency",
	"incredible speed", "outstanding quality", "tremendous reliability", "incredible durability", "spectacular design",
	"fell in love", "incredible relationship", "perfect meeting", "historic summit",
	"incredible success", "total victory", "complete domination", "tremendous power",
	"incredible strength", "unmatched wisdom", "stable genius", "very good genes", "tremendous brain",
	"incredible memory", "perfect recall", "incredible stamina", "perfect health",
	"tremendous doctor", "perfect score",

	"member berries", "underpants gnomes", "Cartman's authority", "Kenny's deaths", "Stan's cynicism",
	"Kyle's lectures", "Randy's schemes", "Butters' innocence", "Towelie's wisdom", "Mr. Garrison's teaching",
	"Chef's advice", "Principal Victoria", "Mr. Mackey's guidance", "Timmy's enthusiasm", "Jimmy's comedy",

	"tremendous tweets", "perfect grammar", "incredible spelling", "beautiful autocorrect", "tremendous typos",
	"incredible caps lock", "perfect punctuation", "tremendous hashtags", "incredible retweets", "beautiful mentions",
	"tremendous followers", "incredible engagement", "perfect timing", "tremendous virality", "incredible reach",

	"tremendous bankruptcy", "incredible debt", "perfect loans", "beautiful foreclosure", "tremendous audit",
	"incredible taxes", "perfect deductions", "tremendous write-offs", "incredible losses", "beautiful profits",
	"tremendous revenue", "incredible margins", "perfect cash flow", "tremendous assets", "incredible liabilities",

	"tremendous hamburgers", "incredible diet coke", "perfect fast food", "beautiful steaks", "tremendous ketchup",
	"incredible pizza", "perfect taco bowls", "tremendous chocolate cake", "incredible ice cream", "beautiful cookies",
	"tremendous coffee", "incredible energy drinks", "perfect supplements", "tremendous vitamins", "incredible protein",

	"tremendous golf", "incredible handicap", "perfect swing", "beautiful courses", "tremendous tournaments",
	"incredible scores", "perfect putts", "tremendous drives", "incredible accuracy", "beautiful technique",
	"tremendous wrestling", "incredible matches", "perfect moves", "beautiful entertainment",

	"tremendous algorithms", "incredible platforms", "perfect posts", "beautiful content",
	"incredible metrics", "perfect analytics", "tremendous reach", "incredible influence", "beautiful branding",
	"tremendous marketing", "incredible advertising", "perfect campaigns", "tremendous ROI", "incredible conversion",

	"tremendous hurricanes", "incredible storms", "perfect weather", "beautiful sunshine", "tremendous rain",
	"incredible snow", "perfect temperature", "tremendous wind", "incredible pressure", "beautiful clouds",
	"tremendous lightning", "incredible thunder", "perfect rainbow", "tremendous drought", "incredible flooding",

	"tremendous eagles", "incredible lions", "perfect tigers", "beautiful elephants", "tremendous sharks",
	"incredible dolphins", "perfect whales", "tremendous bears", "incredible wolves", "beautiful deer",
	"tremendous horses", "incredible dogs", "perfect cats", "tremendous birds", "incredible fish",

	"tremendous covfefe", "incredible hamberders", "perfect smocking gun", "beautiful achomlishments", "tremendous unpresidented",
	"incredible bigly", "perfect yuge", "tremendous braggadocious", "incredible phenomenal", "beautiful fantastic",
	"tremendous spectacular", "incredible magnificent", "perfect extraordinary", "tremendous outstanding", "incredible exceptional",
}

var prompts = []Prompt{
	{Text: "Just had a {0} with {1}. They said {2}. Fake news!", Blanks: 3},
	{Text: "The {0} are totally {1}. We need {2} immediately!", Blanks: 3},
	{Text: "My {0} was {1}. Everyone knows it!", Blanks: 2},
	{Text: "I just made the {0} deal with {1}. {2} are going crazy!", Blanks: 3},
	{Text: "The {0} said I couldn't {1}, but I did it anyway. {2}!", Blanks: 3},
	{Text: "Nobody has ever seen {0} like this before. {1}!", Blanks: 2},
	{Text: "I told {0} that {1} was {2}. They agreed completely!", Blanks: 3},
	{Text: "The {0} are rigged! We need {1} to fix this mess!", Blanks: 2},

	{Text: "The polls show I'm winning by {0}! {1} can't believe it!", Blanks: 2},
	{Text: "I defeated {0} with {1}. Total landslide!", Blanks: 2},
	{Text: "The {0} are trying to steal the election with {1}!", Blanks: 2},
	{Text: "My rally had {0} people! {1} is fake news!", Blanks: 2},
	{Text: "I will drain the swamp of {0} and {1}!", Blanks: 2},

	{Text: "I am the {0} president in history!", Blanks: 1},
	{Text: "Nobody knows {0} better than me!", Blanks: 1},
	{Text: "I have the best {0}. Everyone says so!", Blanks: 1},
	{Text: "The {0} love me. Tremendous support!", Blanks: 1},
	{Text: "I will make {0} great again!", Blanks: 1},
	{Text: "My {0} is unmatched. Believe me!", Blanks: 1},
	{Text: "The {0} are out of control. Sad!", Blanks: 1},
	{Text: "I fixed {0} in record time!", Blanks: 1},

	{Text: "I negotiated {0} with {1}. They got {2}!", Blanks: 3},
	{Text: "My {0} empire is worth {1}. {2} are jealous!", Blanks: 3},
	{Text: "I bought {0} for {1} and sold it for {2}. Art of the deal!", Blanks: 3},
	{Text: "The {0} wanted {1}, but I gave them {2} instead!", Blanks: 3},
	{Text: "I fired {0} because of {1}. {2} was the last straw!", Blanks: 3},

	{Text: "I met with {0} about {1}. We discussed {2}!", Blanks: 3},
	{Text: "The {0} called me about {1}. I told them {2}!", Blanks: 3},
	{Text: "I solved {0} with {1}. {2} said it was impossible!", Blanks: 3},
	{Text: "The summit with {0} was {1}. We achieved {2}!", Blanks: 3},
	{Text: "I wrote a {0} letter to {1} about {2}!", Blanks: 3},

	{Text: "I tweeted about {0} and {1} went crazy! {2}!", Blanks: 3},
	{Text: "The {0} reported {1}, but the truth is {2}!", Blanks: 3},
	{Text: "My {0} post got {1} likes! {2} are seething!", Blanks: 3},
	{Text: "I exposed {0} for {1}. {2} can't handle the truth!", Blanks: 3},
	{Text: "The interview about {0} was {1}. {2} loved it!", Blanks: 3},

	{Text: "I played golf with {0} and shot {1}. {2} was impressed!", Blanks: 3},
	{Text: "My {0} show had {1} viewers! {2} are jealous!", Blanks: 3},
	{Text: "I attended {0} and met {1}. We talked about {2}!", Blanks: 3},
	{Text: "The {0} game was {1}. I predicted {2}!", Blanks: 3},
	{Text: "I endorsed {0} for {1}. {2} will win bigly!", Blanks: 3},

	{Text: "I ordered {0} with {1}. The chef said {2}!", Blanks: 3},
	{Text: "My diet of {0} and {1} keeps me {2}!", Blanks: 3},
	{Text: "I discovered {0} at {1}. {2} recommended it!", Blanks: 3},
	{Text: "The {0} restaurant served {1}. I told them {2}!", Blanks: 3},
	{Text: "I invented {0} with {1}. {2} will be huge!", Blanks: 3},

	{Text: "I am tremendously {0}!", Blanks: 1},
	{Text: "The {0} are fake news!", Blanks: 1},
	{Text: "I love {0}. The best!", Blanks: 1},
	{Text: "Nobody does {0} like me!", Blanks: 1},
	{Text: "I invented {0}. True story!", Blanks: 1},
	{Text: "The {0} are rigged!", Blanks: 1},
	{Text: "I will build {0}!", Blanks: 1},
	{Text: "My {0} are incredible!", Blanks: 1},
	{Text: "I defeated {0} easily!", Blanks: 1},
	{Text: "The {0} are tremendous!", Blanks: 1},

	{Text: "I turned {0} into {1}. Magic!", Blanks: 2},
	{Text: "The {0} gave me {1}. Tremendous honor!", Blanks: 2},
	{Text: "I replaced {0} with {1}. Much better!", Blanks: 2},
	{Text: "My {0} beats {1} every time!", Blanks: 2},
	{Text: "I chose {0} over {1}. Smart move!", Blanks: 2},
	{Text: "The {0} wanted {1}. I said no!", Blanks: 2},
	{Text: "I combined {0} with {1}. Genius!", Blanks: 2},
	{Text: "My {0} impressed {1} bigly!", Blanks: 2},
	{Text: "I saved {0} from {1}. Hero!", Blanks: 2},
	{Text: "The {0} copied my {1}. Sad!", Blanks: 2},
}
