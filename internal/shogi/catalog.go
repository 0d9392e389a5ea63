package shogi

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindRyubi              // 劉備
	KindKannu              // 関羽
	KindChohi              // 張飛
	KindChouun             // 超雲
	KindKouchuu            // 黄忠
	KindBachou             // 馬超
	KindKoumei             // 孔明
	KindHoutou             // 龐統
	KindSousou             // 曹操
	KindKakuka             // 郭嘉
	KindJuniku             // 荀彧
	KindJunyuu             // 荀攸
	KindTeiiku             // 程昱
	KindKakouton           // 夏侯惇
	KindKakouen            // 夏侯淵
	KindChuryou            // 張遼
	KindKyocho             // 許褚
	KindJokou              // 徐晃
	KindFu                 // 歩

	numKinds
)

// Primitive 走法原语，一个棋子可以有多个，目标格取并集
type Primitive uint8

const (
	StepCross   Primitive = iota // 上下左右一步
	StepKing                     // 八方向一步
	SlideRook                    // 横竖滑行
	SlideBishop                  // 斜线滑行
	JumpKnight                   // 桂马：前二横一
	SlideLance                   // 香车：向前滑行
	StepGold                     // 金将：前、前斜、左右、正后
	StepSilver                   // 银将：前、前斜、后斜
	StepPawn                     // 步兵：前一步
)

type PieceDef struct {
	Kind   PieceKind
	ID     string
	Letter rune // 棋谱字母，小写；先手用大写
	Moves  []Primitive
	Royal  bool
	Value  int
}

var catalog = [numKinds]PieceDef{
	KindRyubi:    {KindRyubi, "ryubi", 'a', []Primitive{StepCross}, true, 9999},
	KindKannu:    {KindKannu, "kannu", 'b', []Primitive{SlideRook, StepKing}, false, 1200},
	KindChohi:    {KindChohi, "chohi", 'c', []Primitive{SlideBishop, SlideLance}, false, 900},
	KindChouun:   {KindChouun, "chouun", 'd', []Primitive{SlideRook}, false, 800},
	KindKouchuu:  {KindKouchuu, "kouchuu", 'e', []Primitive{SlideRook}, false, 800},
	KindBachou:   {KindBachou, "bachou", 'f', []Primitive{SlideBishop}, false, 700},
	KindKoumei:   {KindKoumei, "koumei", 'g', []Primitive{StepKing, JumpKnight}, false, 700},
	KindHoutou:   {KindHoutou, "houtou", 'h', []Primitive{StepKing, JumpKnight}, false, 700},
	KindSousou:   {KindSousou, "sousou", 'i', []Primitive{StepKing, JumpKnight, SlideLance}, true, 9999},
	KindKakuka:   {KindKakuka, "kakuka", 'j', []Primitive{StepKing}, false, 500},
	KindJuniku:   {KindJuniku, "juniku", 'k', []Primitive{StepKing}, false, 500},
	KindJunyuu:   {KindJunyuu, "junyuu", 'l', []Primitive{StepSilver}, false, 400},
	KindTeiiku:   {KindTeiiku, "teiiku", 'm', []Primitive{StepSilver}, false, 400},
	KindKakouton: {KindKakouton, "kakouton", 'n', []Primitive{SlideRook}, false, 800},
	KindKakouen:  {KindKakouen, "kakouen", 'o', []Primitive{SlideBishop}, false, 700},
	KindChuryou:  {KindChuryou, "churyou", 'q', []Primitive{SlideBishop}, false, 700},
	KindKyocho:   {KindKyocho, "kyocho", 'r', []Primitive{SlideRook}, false, 800},
	KindJokou:    {KindJokou, "jokou", 's', []Primitive{SlideRook}, false, 800},
	KindFu:       {KindFu, "fu", 'p', []Primitive{StepPawn}, false, 100},
}

var (
	kindByLetter = map[rune]PieceKind{}
	kindByID     = map[string]PieceKind{}
)

func init() {
	for k := KindNone + 1; k < numKinds; k++ {
		kindByLetter[catalog[k].Letter] = k
		kindByID[catalog[k].ID] = k
	}
}

func (k PieceKind) Valid() bool { return k > KindNone && k < numKinds }

// Def 返回静态定义；非法 kind 返回零值
func (k PieceKind) Def() *PieceDef {
	if !k.Valid() {
		return &catalog[KindNone]
	}
	return &catalog[k]
}

func (k PieceKind) String() string {
	if !k.Valid() {
		return "none"
	}
	return catalog[k].ID
}

func (k PieceKind) Royal() bool { return k.Def().Royal }
func (k PieceKind) Value() int  { return k.Def().Value }

// PawnLike 带 StepPawn 原语的棋子受二步、最后一行打入限制
func (k PieceKind) PawnLike() bool {
	for _, m := range k.Def().Moves {
		if m == StepPawn {
			return true
		}
	}
	return false
}

// ParseKind 按 ID（如 "fu"）查棋子种类
func ParseKind(id string) (PieceKind, bool) {
	k, ok := kindByID[id]
	return k, ok
}

// Kinds 全部棋子种类，按枚举顺序
func Kinds() []PieceKind {
	out := make([]PieceKind, 0, numKinds-1)
	for k := KindNone + 1; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}
