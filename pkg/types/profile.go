package types

// Advice pairs a description of an archetype with a way to work with it.
type Advice struct {
	Description string `json:"description" yaml:"description"`
	Strategy    string `json:"strategy" yaml:"strategy"`
}

// StarProfile is the descriptive metadata for one archetype. Summary is the
// one-line portrait, Personal addresses the chart's owner, Business addresses
// a colleague who has to work with them.
type StarProfile struct {
	Summary  string `json:"summary" yaml:"summary"`
	Personal Advice `json:"personal" yaml:"personal"`
	Business Advice `json:"business" yaml:"business"`
}

// starProfiles is indexed by StarType; index 0 (StarUndefined) stays empty.
var starProfiles = [Kengyu + 1]StarProfile{
	Kanshaku: {
		Summary: "An independent craftsperson who shines when left to run their own work.",
		Personal: Advice{
			Description: "Goes their own way and guards their own methods; a craftsperson at heart.",
			Strategy:    "Avoid bending too far to others. Solo assignments and specialist roles with real discretion suit you best.",
		},
		Business: Advice{
			Description: "Never breaks their own pace or method; a self-reliant artisan.",
			Strategy:    "Do not micromanage. Hand over the goal and the authority, then let them run.",
		},
	},
	Sekimon: {
		Summary: "A peer-minded coordinator with a gift for keeping relationships smooth.",
		Personal: Advice{
			Description: "Sees everyone as an equal and values harmony; a natural at connecting people.",
			Strategy:    "Teamwork-heavy environments and coordinator or support roles make the most of you.",
		},
		Business: Advice{
			Description: "Prefers equal footing over hierarchy and cares about team cohesion; a politician type.",
			Strategy:    "Skip top-down orders. Consult and build consensus with them before deciding.",
		},
	},
	Hokaku: {
		Summary: "A relaxed, objective communicator who is at their best without pressure.",
		Personal: Advice{
			Description: "A natural, easygoing expresser whose energy comes from enjoying the work.",
			Strategy:    "Stay away from rigid quotas; open environments that value communication and perspective fit you.",
		},
		Business: Advice{
			Description: "Values process and enjoyment and approaches things in a natural way; a free spirit.",
			Strategy:    "Do not bind them with hard quotas. Give them room and make the work feel like a game.",
		},
	},
	Chojo: {
		Summary: "A perfectionist artist with a personal aesthetic who excels in deep solo work.",
		Personal: Advice{
			Description: "A sensitive artist with a distinct aesthetic who loves solitude and perfection.",
			Strategy:    "Protect time alone. Creative work or a specialist field lets your talent open up.",
		},
		Business: Advice{
			Description: "Has a sharp sensibility and a personal aesthetic; a perfectionist who is easily hurt.",
			Strategy:    "Tell them the task is one only they can do, and pay attention to how they feel.",
		},
	},
	Rokuzon: {
		Summary: "A warm, magnetic presence who draws people in and lands the big deals.",
		Personal: Advice{
			Description: "Generous and eager to be appreciated; people are drawn to you without effort.",
			Strategy:    "Work done for someone else gets noticed. Sales and service roles bring outsized results.",
		},
		Business: Advice{
			Description: "A giver with a strong need to contribute and to be recognized for it.",
			Strategy:    "Thank them generously even for small wins; recognition is their fuel.",
		},
	},
	Shiroku: {
		Summary: "A steady accumulator who never slips; the back office everyone relies on.",
		Personal: Advice{
			Description: "Steady and careful, a professional at building things up; loves routine and calm.",
			Strategy:    "Environments with few sudden changes, and administrative or management work, earn you deep trust.",
		},
		Business: Advice{
			Description: "Values steady accumulation and safety; solid and conservative.",
			Strategy:    "Avoid sudden changes and surprises. Show data, manuals and precedent to reassure them.",
		},
	},
	Ryuko: {
		Summary: "A rule-breaking maverick who hates routine and builds new things from zero.",
		Personal: Advice{
			Description: "Dislikes constraint and always looks for new stimulus; a reformer who cannot stand routine.",
			Strategy:    "Steer clear of pointless internal rules. Planning and new-venture work, where things start from zero, is your place.",
		},
		Business: Advice{
			Description: "An idea person and reformer who dislikes routine work and old rules.",
			Strategy:    "Drop the 'we have always done it this way' argument and keep giving them new missions.",
		},
	},
	Gyokudo: {
		Summary: "An intellectual who respects logic and tradition and reasons from past data.",
		Personal: Advice{
			Description: "A thinker who values logic and tradition and learns from what came before.",
			Strategy:    "Settings where data and reasoning win, such as research, teaching and analysis, bring out your talent.",
		},
		Business: Advice{
			Description: "A theorist who values logic, tradition and intellect; appeals to emotion do not work.",
			Strategy:    "Persuade with objective facts and past results in a logically consistent explanation.",
		},
	},
	Shaki: {
		Summary: "A vanguard who moves before thinking and wins short, fast campaigns.",
		Personal: Advice{
			Description: "A speedster who acts first and wants things black or white.",
			Strategy:    "Long meetings drain you. Short-cycle sales or hands-on field work is where you dominate.",
		},
		Business: Advice{
			Description: "Moves before thinking; a speed-first spearhead.",
			Strategy:    "No excuses or long preambles. Give instructions conclusion first, and quickly.",
		},
	},
	Kengyu: {
		Summary: "A proud, responsible elite who honours rules and reputation.",
		Personal: Advice{
			Description: "Made of responsibility and self-respect; a model professional who honours the rules.",
			Strategy:    "Clear titles and evaluations motivate you; administrative and public roles fit well.",
		},
		Business: Advice{
			Description: "Cares deeply about etiquette, reputation and brand; a proud elite.",
			Strategy:    "Never embarrass them in public. Respect their title and position and observe the courtesies.",
		},
	},
}
