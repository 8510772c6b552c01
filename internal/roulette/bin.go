package roulette

import "sort"

// Bin - множество исходов, которые выигрывают при остановке колеса на одной ячейке.
// Дубликаты отбрасываются по имени исхода.
type Bin struct {
	outcomes map[string]Outcome
}

func NewBin(outcomes ...Outcome) *Bin {
	b := &Bin{outcomes: make(map[string]Outcome, len(outcomes))}
	for _, o := range outcomes {
		b.Add(o)
	}
	return b
}

// Add добавляет исход. Если исход с таким именем уже есть - ничего не меняется
func (b *Bin) Add(o Outcome) {
	if _, ok := b.outcomes[o.Key()]; ok {
		return
	}
	b.outcomes[o.Key()] = o
}

// Merge объединяет other с текущей ячейкой (объединение множеств)
func (b *Bin) Merge(other *Bin) {
	if other == nil {
		return
	}
	for _, o := range other.outcomes {
		b.Add(o)
	}
}

func (b *Bin) Contains(o Outcome) bool {
	_, ok := b.outcomes[o.Key()]
	return ok
}

// Find ищет исход по имени
func (b *Bin) Find(name string) (Outcome, bool) {
	o, ok := b.outcomes[name]
	return o, ok
}

func (b *Bin) Len() int {
	return len(b.outcomes)
}

// Outcomes возвращает копию исходов, отсортированную по имени
func (b *Bin) Outcomes() []Outcome {
	result := make([]Outcome, 0, len(b.outcomes))
	for _, o := range b.outcomes {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].name < result[j].name
	})
	return result
}

// Equal - равенство множеств исходов. Две nil ячейки равны
func (b *Bin) Equal(other *Bin) bool {
	if b == nil || other == nil {
		return b == other
	}
	if len(b.outcomes) != len(other.outcomes) {
		return false
	}
	for key := range b.outcomes {
		if _, ok := other.outcomes[key]; !ok {
			return false
		}
	}
	return true
}
