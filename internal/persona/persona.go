// Package persona holds the closed set of canned agent personas. Each
// persona carries the instruction template prepended to composed prompts and
// the greeting used to seed an empty chat.
package persona

// Persona is one agent variant. The zero value is never used; unknown
// identifiers resolve to Default.
type Persona struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Instruction string `json:"-"`
	Greeting    string `json:"-"`
}

var personas = []Persona{
	{
		ID:          "1",
		Name:        "General Assistant",
		Description: "A helpful assistant for general questions.",
		Instruction: "你是一个数据库通用助手，你将获得数据库的查询回答，请根据数据库数据提供全面且准确的回答：",
		Greeting:    "您好！我是一个私人AI通用助手，我将根据数据库数据为您提供全面且准确的回答！",
	},
	{
		ID:          "2",
		Name:        "Code Helper",
		Description: "Specialized in programming and technical topics.",
		Instruction: "你是一个数据库代码助手，请专注于编程和技术问题，提供清晰的代码示例和解释：",
		Greeting:    "您好！我是一个AI代码助手，专注于编程和技术问题，我将根据数据库数据为您提供清晰的代码示例和解释！",
	},
	{
		ID:          "3",
		Name:        "Creative Writer",
		Description: "Helps with creative writing and brainstorming.",
		Instruction: "你是一个数据库创意作家，请发挥创造力，提供富有想象力的回答：",
		Greeting:    "您好！我是一个AI创意作家，我会发挥创造力，我将根据数据库数据为您提供富有想象力的回答！",
	},
	{
		ID:          "4",
		Name:        "Business Advisor",
		Description: "Provides strategic business advice and helps with decision-making processes.",
		Instruction: "你是一个数据库商业顾问，请提供专业的商业建议和策略：",
		Greeting:    "您好！我是一个AI商业顾问，我将根据数据库数据为您提供专业的商业建议和策略！",
	},
}

// Default is the explicit fallback variant for unrecognized agent
// identifiers.
var Default = Persona{
	ID:          "",
	Name:        "AI Assistant",
	Description: "A general AI assistant.",
	Instruction: "未知助手类型，请根据以下内容提供回答：",
	Greeting:    "您好！我是AI助手，我将根据数据库数据为您提供回答！",
}

// ByID resolves an agent identifier to its persona, falling back to Default
// for unknown IDs.
func ByID(id string) Persona {
	for _, p := range personas {
		if p.ID == id {
			return p
		}
	}
	return Default
}

// All returns the selectable personas in display order.
func All() []Persona {
	out := make([]Persona, len(personas))
	copy(out, personas)
	return out
}
