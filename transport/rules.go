package transport

import (
	"strings"
	"unicode/utf8"

	"transportner/morph"
	"transportner/referents"
	"transportner/tokens"
)

const (
	// maxDateGap число пробельных символов, на котором дата еще относится к элементу
	maxDateGap = 3
	// maxLowerBrandLength короткие марки в нижнем регистре считаются обычными словами
	maxLowerBrandLength = 4
	// maxQuotedModelLetters буквенных символов в кавычках, при которых это еще модель
	maxQuotedModelLetters = 3
)

// Служебные части речи, которые не могут быть именем или маркой
const closedClasses = morph.ClassPreposition | morph.ClassConjunction | morph.ClassPronoun | morph.ClassAdverb

// matchOwnership "принадлежит ...", "владелец ..." перед организацией
func (r *Recognizer) matchOwnership(q *query) (*Match, bool) {
	end, ok := r.ontology.matchKeyword(keywordOwner, q.s, q.i)
	if !ok {
		return nil, false
	}
	m := r.TryMatch(q.s, skipFiller(q.s, end+1), q.prev, q.afterConjunction, q.preferHighConfidence)
	if m == nil || m.Category != CategoryOrg {
		return nil, false
	}
	m.Begin = q.i
	return m, true
}

func (r *Recognizer) matchOrganization(q *query) (*Match, bool) {
	res, ok := r.resolve(referents.KindOrganization, q.s, q.i)
	if !ok {
		return nil, false
	}
	return &Match{
		Begin:    q.i,
		End:      res.End,
		Category: CategoryOrg,
		Value:    res.Referent.Name,
		Referent: res.Referent,
	}, false
}

// matchFlag "под флагом Панамы", "порт приписки - Мурманск"
func (r *Recognizer) matchFlag(q *query) (*Match, bool) {
	end, ok := r.ontology.matchKeyword(keywordFlag, q.s, q.i)
	if !ok {
		return nil, false
	}
	res, ok := r.resolve(referents.KindGeo, q.s, skipFiller(q.s, end+1))
	if !ok {
		return nil, false
	}
	return &Match{
		Begin:    q.i,
		End:      res.End,
		Category: CategoryGeo,
		Value:    res.Referent.Name,
		Referent: res.Referent,
	}, false
}

// matchRoute "рейс Москва - Сочи", "из Москвы в Сочи".
// Один пункт допустим только после явного слова "рейс"/"маршрут".
func (r *Recognizer) matchRoute(q *query) (*Match, bool) {
	s := q.s
	j := q.i
	hasKeyword := false
	if end, ok := r.ontology.matchKeyword(keywordRoute, s, j); ok {
		hasKeyword = true
		j = skipFiller(s, end+1)
	}

	var items []*referents.Referent
	last := -1
	for s.Valid(j) {
		k := j
		if len(items) > 0 {
			if !isRouteJoiner(s, k) {
				break
			}
			k++
		} else if s.IsValue(k, "ИЗ", "С", "ОТ", "З", "ІЗ", "ВІД") {
			k++
		}
		res, ok := r.resolve(referents.KindGeo, s, k)
		if !ok || !(res.Referent.IsState || res.Referent.IsCity) || s.At(k).NewlinesBefore > 0 {
			break
		}
		items = append(items, res.Referent)
		last = res.End
		j = res.End + 1
	}
	if len(items) == 0 || (len(items) == 1 && !hasKeyword) {
		return nil, false
	}

	names := make([]string, len(items))
	for n, it := range items {
		names[n] = it.Name
	}
	return &Match{
		Begin:        q.i,
		End:          last,
		Category:     CategoryRoute,
		Value:        strings.Join(names, " - "),
		RouteItems:   items,
		routeKeyword: hasKeyword,
	}, false
}

func isRouteJoiner(s *tokens.Stream, i int) bool {
	return s.IsHyphen(i) || s.IsAnd(i) || s.IsValue(i, "В", "ВО", "ДО", "ЧЕРЕЗ", "НА", "У")
}

// matchDate "2010 г. выпуска", "от 12.05.2020"
func (r *Recognizer) matchDate(q *query) (*Match, bool) {
	s := q.s
	j := q.i
	if s.IsValue(j, "ОТ", "ВІД") {
		j++
		if t := s.At(j); t == nil || t.WhitespacesBefore >= maxDateGap || t.NewlinesBefore > 0 {
			return nil, false
		}
	}
	res, ok := r.resolve(referents.KindDate, s, j)
	if !ok {
		return nil, false
	}
	end := res.End
	if next := s.At(end + 1); next != nil && next.NewlinesBefore == 0 {
		if e, ok := r.ontology.matchKeyword(keywordDateSuffix, s, end+1); ok {
			end = e
		}
	}
	return &Match{
		Begin:    q.i,
		End:      end,
		Category: CategoryDate,
		Value:    res.Referent.String(),
		Referent: res.Referent,
	}, false
}

// matchNumber номер после "№" или слова-указателя; неудача после указателя
// завершает распознавание. Номерной знак без указателя распознается, только
// если в нем нет сомнений.
func (r *Recognizer) matchNumber(q *query) (*Match, bool) {
	s := q.s
	next, ok := r.CheckNumberKeyword(s, q.i)
	if !ok {
		if m := scanPlateNumber(s, q.i); m != nil && !m.IsDoubt {
			return m, false
		}
		return nil, false
	}

	kind := KindUndefined
	if term, _, ok := r.ontology.lookupCategory(s, q.i, CategoryNumber); ok {
		kind = term.Kind
	}
	ignoreRegionSplit := kind == KindShip || kind == KindFly ||
		(q.prev != nil && q.prev.Kind != KindAuto && q.prev.Kind != KindUndefined)

	m := scanPlateNumber(s, next)
	if m == nil {
		m = scanGenericNumber(s, next, ignoreRegionSplit)
	}
	if m == nil {
		return nil, true
	}
	m.Begin = q.i
	if m.Kind == KindUndefined {
		m.Kind = kind
	}
	return m, true
}

// matchTerm словарное существительное или марка, в том числе в скобках или кавычках
func (r *Recognizer) matchTerm(q *query) (*Match, bool) {
	s := q.s
	from, closeIdx := q.i, -1
	if s.IsBracketStart(q.i, false) {
		closeIdx = s.MatchBracket(q.i)
		from = q.i + 1
	}
	term, end, ok := r.ontology.lookupCategory(s, from, CategoryNoun, CategoryBrand)
	if !ok || (closeIdx >= 0 && end+1 != closeIdx) {
		return nil, false
	}
	if term.Category == CategoryBrand && isLowerAbbrev(s, from, end, term) {
		return nil, false
	}
	if term.Category == CategoryNoun && term.Canonical == craftNoun && from == end &&
		morph.Fold(s.At(from).Text) == craftAbbrev && !hasQualifierAfter(s, end) {
		return nil, false
	}
	if term.Ambiguous && !acceptAmbiguous(q, term) {
		return nil, false
	}

	m := &Match{
		Begin:    q.i,
		End:      end,
		Category: term.Category,
		Kind:     term.Kind,
		Value:    termValue(term),
		IsDoubt:  term.Ambiguous,
	}
	if closeIdx >= 0 {
		m.End = closeIdx
		return m, false
	}

	// "самолет-амфибия", "катер-буксир"
	if m.Category == CategoryNoun && s.IsHyphen(end+1) {
		if t := s.At(end + 2); t != nil && t.NewlinesBefore == 0 {
			if second, end2, ok := r.ontology.lookupCategory(s, end+2, CategoryNoun); ok {
				m.End = end2
				m.Value += "-" + termValue(second)
				if m.Kind == KindUndefined {
					m.Kind = second.Kind
				}
			}
		}
	}
	return m, false
}

// acceptAmbiguous неоднозначный термин принимается при подтверждающем контексте
func acceptAmbiguous(q *query, term *Term) bool {
	if q.preferHighConfidence {
		return true
	}
	p := q.prev
	switch {
	case p == nil:
		return false
	case p.Category == CategoryNoun:
		return isCompatibleKind(p.Kind, term.Kind)
	case p.Category == CategoryBrand:
		// повтор той же марки подтверждает ее
		return p.Kind == term.Kind && p.Value == termValue(term)
	}
	return false
}

func termValue(t *Term) string {
	if t.Category == CategoryNoun {
		return strings.ToLower(t.Canonical)
	}
	return strings.ToUpper(t.Canonical)
}

// isLowerAbbrev короткая марка, написанная строчными буквами ("газ", "ваз")
func isLowerAbbrev(s *tokens.Stream, from, end int, t *Term) bool {
	if utf8.RuneCountInString(t.Canonical) > maxLowerBrandLength {
		return false
	}
	for k := from; k <= end; k++ {
		if tk := s.At(k); tk.IsWord() && !tk.Chars.IsAllLower {
			return false
		}
	}
	return true
}

// hasQualifierAfter за токеном вплотную следует уточнение в скобках
func hasQualifierAfter(s *tokens.Stream, end int) bool {
	k := end + 1
	if s.IsChar(k, '.') {
		k++
	}
	t := s.At(k)
	return t != nil && t.NewlinesBefore == 0 && t.WhitespacesBefore <= 1 && s.IsBracketStart(k, false)
}

// matchAdjectivePhrase "грузовой автомобиль", "российское судно (танкер)"
func (r *Recognizer) matchAdjectivePhrase(q *query) (*Match, bool) {
	s := q.s
	if r.phrases == nil || !s.At(q.i).Morph.Is(morph.ClassAdjective) {
		return nil, false
	}
	ph, ok := r.phrases.Parse(s, q.i)
	if !ok || len(ph.Adjectives) == 0 {
		return nil, false
	}
	for k := q.i + 1; k <= ph.End; k++ {
		term, end, ok := r.ontology.lookupCategory(s, k, CategoryNoun)
		if !ok || end != ph.End {
			continue
		}
		if term.Canonical == craftNoun && term.Kind == KindShip && !hasQualifierAfter(s, end) {
			return nil, false
		}
		return &Match{
			Begin:    q.i,
			End:      end,
			Category: CategoryNoun,
			Kind:     term.Kind,
			Value:    termValue(term),
			AltValue: ph.Normalized,
			State:    r.stateAmong(s, ph.Adjectives),
		}, false
	}
	return nil, false
}

// stateAmong государство среди определений ("российский", "панамский")
func (r *Recognizer) stateAmong(s *tokens.Stream, positions []int) *referents.Referent {
	for _, k := range positions {
		if res, ok := r.resolve(referents.KindGeo, s, k); ok && res.Referent.IsState {
			return res.Referent
		}
	}
	return nil
}

// matchClass "класс (А)"
func (r *Recognizer) matchClass(q *query) (*Match, bool) {
	s := q.s
	end, ok := r.ontology.matchKeyword(keywordClass, s, q.i)
	if !ok {
		return nil, false
	}
	open := skipFiller(s, end+1)
	if !s.IsBracketStart(open, false) {
		return nil, false
	}
	closeIdx := s.MatchBracket(open)
	value := strings.TrimSpace(s.Span(open+1, closeIdx-1))
	if value == "" {
		return nil, false
	}
	return &Match{Begin: q.i, End: closeIdx, Category: CategoryClass, Value: value}, false
}

// matchBrandDigits число сразу после марки: "Boeing 737"
func (r *Recognizer) matchBrandDigits(q *query) (*Match, bool) {
	if !q.prev.is(CategoryBrand) || !q.s.At(q.i).IsNumber() {
		return nil, false
	}
	return r.attachModel(q, q.i, false), false
}

// matchModel модель или имя после существительного, марки или имени
func (r *Recognizer) matchModel(q *query) (*Match, bool) {
	s, p := q.s, q.prev
	if s.IsBracketStart(q.i, false) && (p.is(CategoryNoun) || q.afterConjunction) {
		if m := r.matchQuoted(q); m != nil {
			return m, false
		}
	}
	if !p.is(CategoryNoun, CategoryBrand, CategoryName) {
		return nil, false
	}
	allowFirstWord := p.is(CategoryBrand) || (p.is(CategoryNoun) && (p.Kind == KindFly || p.Kind == KindUndefined))
	return r.attachModel(q, q.i, allowFirstWord), false
}

// matchQuoted содержимое кавычек после существительного: имя или модель
func (r *Recognizer) matchQuoted(q *query) *Match {
	s := q.s
	closeIdx := s.MatchBracket(q.i)
	if closeIdx <= q.i+1 {
		return nil
	}
	// "автомобиль (ВАЗ 2110)": в круглых скобках словарный термин не прячется в модель
	if !s.IsQuote(q.i) {
		if _, _, ok := r.ontology.Lookup(s, q.i+1); ok {
			return nil
		}
	}
	digits, letters := 0, 0
	hasPunct := false
	for k := q.i + 1; k < closeIdx; k++ {
		t := s.At(k)
		switch {
		case t.IsNumber():
			digits += len(t.Text)
		case t.IsWord(), t.IsReferent():
			letters += utf8.RuneCountInString(t.Text)
		case !s.IsHyphen(k):
			hasPunct = true
		}
	}
	first := s.At(q.i + 1)
	capitalized := first.Chars.IsCapitalUpper || (first.Chars.IsAllUpper && first.Chars.IsLetter)
	named := q.prev != nil && (q.prev.Kind == KindShip || q.prev.Kind == KindSpace)
	text := collapseSpaces(s.Span(q.i+1, closeIdx-1))

	switch {
	case (digits == 0 && !hasPunct && capitalized) || named:
		return &Match{Begin: q.i, End: closeIdx, Category: CategoryName, Value: strings.ToUpper(text)}
	case digits > 0 && (letters <= maxQuotedModelLetters || letters < digits):
		return &Match{Begin: q.i, End: closeIdx, Category: CategoryModel, Value: strings.ToUpper(text)}
	}
	return nil
}

// matchProperBrand слово с заглавной буквы после "автомобиль" считается маркой
func (r *Recognizer) matchProperBrand(q *query) (*Match, bool) {
	p := q.prev
	if !p.is(CategoryNoun) || p.Kind != KindAuto {
		return nil, false
	}
	t := q.s.At(q.i)
	if !isNameWord(t) || t.NewlinesBefore > 0 {
		return nil, false
	}
	if _, ok := r.resolve(referents.KindPerson, q.s, q.i); ok {
		return nil, false
	}
	return &Match{
		Begin:    q.i,
		End:      q.i,
		Category: CategoryBrand,
		Kind:     KindAuto,
		Value:    strings.ToUpper(t.Text),
		IsDoubt:  true,
	}, false
}

// matchNameRun собственное имя судна или космического аппарата: подряд идущие
// слова с заглавной буквы ("теплоход Михаил Светлов")
func (r *Recognizer) matchNameRun(q *query) (*Match, bool) {
	s, p := q.s, q.prev
	if !(p.is(CategoryNoun) && (p.Kind == KindShip || p.Kind == KindSpace)) && !q.afterConjunction {
		return nil, false
	}
	t := s.At(q.i)
	if !isNameWord(t) {
		return nil, false
	}
	upperRun := isUpperWord(t)
	end := q.i
	for k := q.i + 1; ; k++ {
		n := s.At(k)
		if n == nil || n.NewlinesBefore > 0 || n.WhitespacesBefore > 1 || !isNameWord(n) || isUpperWord(n) != upperRun {
			break
		}
		if _, _, ok := r.ontology.Lookup(s, k); ok {
			break
		}
		end = k
	}

	if r.isAdjectiveRun(s, q.i, end) {
		return nil, false
	}
	if res, ok := r.resolve(referents.KindPerson, s, q.i); ok {
		// имя, написанное в другой графике, чем найденная персона, - ложное срабатывание
		pc := tokens.CharInfoOf(res.Referent.Name)
		if t.Chars.IsCyrillic == pc.IsCyrillic {
			return nil, false
		}
	}

	m := &Match{
		Begin:    q.i,
		End:      end,
		Category: CategoryName,
		Value:    strings.ToUpper(collapseSpaces(s.Span(q.i, end))),
	}
	if k := end + 1; s.IsBracketStart(k, false) && s.At(k).WhitespacesBefore <= 1 && s.At(k).NewlinesBefore == 0 {
		closeIdx := s.MatchBracket(k)
		if alt := collapseSpaces(s.Span(k+1, closeIdx-1)); alt != "" {
			m.AltValue = strings.ToUpper(alt)
			m.End = closeIdx
		}
	}
	return m, false
}

// isAdjectiveRun вся группа слов - прилагательные
func (r *Recognizer) isAdjectiveRun(s *tokens.Stream, begin, end int) bool {
	if !s.At(begin).Morph.Is(morph.ClassAdjective) {
		return false
	}
	if r.phrases != nil {
		if ph, ok := r.phrases.Parse(s, begin); ok && ph.End <= end {
			return true
		}
	}
	for k := begin; k <= end; k++ {
		if !s.At(k).Morph.Is(morph.ClassAdjective) {
			return false
		}
	}
	return true
}

// isNameWord слово с заглавной буквы или целиком заглавное, не служебное
func isNameWord(t *tokens.Token) bool {
	if !t.IsWord() || t.Morph.Class&closedClasses != 0 {
		return false
	}
	return t.Chars.IsCapitalUpper || isUpperWord(t)
}

func isUpperWord(t *tokens.Token) bool {
	return t.Chars.IsAllUpper && utf8.RuneCountInString(t.Text) > 1
}

// skipFiller пропускает двоеточия и дефисы
func skipFiller(s *tokens.Stream, i int) int {
	for s.IsColon(i) || s.IsHyphen(i) {
		i++
	}
	return i
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
