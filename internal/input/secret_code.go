// internal/input/secret_code.go
package input

// RetaliateCode — последовательность, переключающая режим ответного удара.
var RetaliateCode = []Button{Up, Up, Left, Down, Left, Down, Up, Left, Up, Right, Select, Start}

// SecretCode отслеживает ввод кода по нажатиям направлений, Select и Start.
// Кнопки атаки код не сбрасывают.
type SecretCode struct {
	sequence []Button
	progress int
}

func NewSecretCode(sequence []Button) *SecretCode {
	return &SecretCode{sequence: sequence}
}

// codeButtons — порядок проверки при одновременных нажатиях; за тик учитывается одна кнопка.
var codeButtons = []Button{Up, Down, Left, Right, Select, Start}

// Feed обрабатывает снимок тика. Возвращает true, если код введён полностью.
func (c *SecretCode) Feed(s Snapshot) bool {
	for _, b := range codeButtons {
		if !s.JustPressed(b) {
			continue
		}
		if c.progress < len(c.sequence) && c.sequence[c.progress] == b {
			c.progress++
		} else {
			c.progress = 0
		}
		if c.progress == len(c.sequence) {
			c.progress = 0
			return true
		}
		return false
	}
	return false
}

// Progress — сколько кнопок кода уже введено.
func (c *SecretCode) Progress() int {
	return c.progress
}
