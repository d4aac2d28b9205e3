package transport

// termGroup группа написаний одного термина; первое слово - каноническое
type termGroup struct {
	lang      string
	kind      VehicleKind
	ambiguous bool
	// abbrev каноническая форма не ищется в тексте, только сокращения
	abbrev bool
	words  []string
}

func (g termGroup) term(cat Category) *Term {
	t := &Term{
		Canonical: g.words[0],
		Variants:  g.words[1:],
		Lang:      g.lang,
		Category:  cat,
		Kind:      g.kind,
		Ambiguous: g.ambiguous,
	}
	if g.abbrev {
		t.forms = g.words[1:]
	}
	return t
}

// craftNoun родовое "судно": сокращение СУД совпадает со словом "суд"
const (
	craftNoun   = "судно"
	craftAbbrev = "СУД"
)

var nounTable = []termGroup{
	// автотранспорт
	{lang: "ru", kind: KindAuto, words: []string{"автомобиль", "автомашина", "авто", "а/м"}},
	{lang: "ru", kind: KindAuto, words: []string{"транспортное средство", "автотранспортное средство", "т/с", "ТС"}},
	{lang: "ru", kind: KindAuto, words: []string{"машина"}},
	{lang: "ru", kind: KindAuto, words: []string{"грузовик"}},
	{lang: "ru", kind: KindAuto, words: []string{"автобус"}},
	{lang: "ru", kind: KindAuto, words: []string{"микроавтобус"}},
	{lang: "ru", kind: KindAuto, words: []string{"троллейбус"}},
	{lang: "ru", kind: KindAuto, words: []string{"мотоцикл"}},
	{lang: "ru", kind: KindAuto, words: []string{"мопед"}},
	{lang: "ru", kind: KindAuto, words: []string{"скутер"}},
	{lang: "ru", kind: KindAuto, words: []string{"трактор"}},
	{lang: "ru", kind: KindAuto, words: []string{"тягач"}},
	{lang: "ru", kind: KindAuto, words: []string{"прицеп"}},
	{lang: "ru", kind: KindAuto, words: []string{"полуприцеп"}},
	{lang: "ru", kind: KindAuto, words: []string{"фургон"}},
	{lang: "ru", kind: KindAuto, words: []string{"самосвал"}},
	{lang: "ru", kind: KindAuto, words: []string{"автокран"}},
	{lang: "ru", kind: KindAuto, words: []string{"внедорожник"}},
	{lang: "ru", kind: KindAuto, words: []string{"седан"}},
	{lang: "ru", kind: KindAuto, words: []string{"хэтчбек"}},
	{lang: "ru", kind: KindAuto, words: []string{"минивэн"}},
	{lang: "ru", kind: KindAuto, words: []string{"пикап"}},
	{lang: "uk", kind: KindAuto, words: []string{"автомобіль", "автомашина"}},
	{lang: "uk", kind: KindAuto, words: []string{"транспортний засіб", "т/з"}},
	{lang: "uk", kind: KindAuto, words: []string{"вантажівка"}},
	{lang: "uk", kind: KindAuto, words: []string{"причіп"}},

	// водный транспорт
	{lang: "ru", kind: KindShip, words: []string{craftNoun, craftAbbrev}},
	{lang: "ru", kind: KindShip, words: []string{"корабль"}},
	{lang: "ru", kind: KindShip, words: []string{"теплоход", "т/х"}},
	{lang: "ru", kind: KindShip, words: []string{"пароход", "п/х"}},
	{lang: "ru", kind: KindShip, words: []string{"танкер"}},
	{lang: "ru", kind: KindShip, words: []string{"сухогруз"}},
	{lang: "ru", kind: KindShip, words: []string{"контейнеровоз"}},
	{lang: "ru", kind: KindShip, words: []string{"балкер"}},
	{lang: "ru", kind: KindShip, words: []string{"паром"}},
	{lang: "ru", kind: KindShip, words: []string{"яхта"}},
	{lang: "ru", kind: KindShip, words: []string{"катер"}},
	{lang: "ru", kind: KindShip, words: []string{"лодка"}},
	{lang: "ru", kind: KindShip, words: []string{"подводная лодка", "подлодка", "субмарина"}},
	{lang: "ru", kind: KindShip, words: []string{"баржа"}},
	{lang: "ru", kind: KindShip, words: []string{"буксир"}},
	{lang: "ru", kind: KindShip, words: []string{"ледокол"}},
	{lang: "ru", kind: KindShip, words: []string{"траулер"}},
	{lang: "ru", kind: KindShip, words: []string{"крейсер"}},
	{lang: "ru", kind: KindShip, words: []string{"эсминец"}},
	{lang: "ru", kind: KindShip, words: []string{"фрегат"}},
	{lang: "ru", kind: KindShip, words: []string{"теплоход-паром"}},
	{lang: "uk", kind: KindShip, words: []string{"корабель"}},
	{lang: "uk", kind: KindShip, words: []string{"теплохід"}},
	{lang: "uk", kind: KindShip, words: []string{"човен"}},
	{lang: "uk", kind: KindShip, words: []string{"пором"}},
	{lang: "uk", kind: KindShip, words: []string{"криголам"}},

	// воздушный транспорт
	{lang: "ru", kind: KindFly, words: []string{"самолет"}},
	{lang: "ru", kind: KindFly, words: []string{"воздушное судно"}},
	{lang: "ru", kind: KindFly, ambiguous: true, abbrev: true, words: []string{"воздушное судно", "ВС"}},
	{lang: "ru", kind: KindFly, words: []string{"вертолет"}},
	{lang: "ru", kind: KindFly, words: []string{"авиалайнер", "лайнер"}},
	{lang: "ru", kind: KindFly, words: []string{"гидросамолет"}},
	{lang: "ru", kind: KindFly, words: []string{"летательный аппарат", "ЛА"}},
	{lang: "ru", kind: KindFly, words: []string{"беспилотный летательный аппарат", "беспилотник", "БПЛА", "БЛА", "дрон"}},
	{lang: "ru", kind: KindFly, words: []string{"планер"}},
	{lang: "ru", kind: KindFly, words: []string{"дирижабль"}},
	{lang: "ru", kind: KindFly, words: []string{"истребитель"}},
	{lang: "ru", kind: KindFly, words: []string{"бомбардировщик"}},
	{lang: "ru", kind: KindFly, words: []string{"самолет-амфибия"}},
	{lang: "uk", kind: KindFly, words: []string{"літак"}},
	{lang: "uk", kind: KindFly, words: []string{"повітряне судно"}},
	{lang: "uk", kind: KindFly, words: []string{"гелікоптер", "вертоліт"}},
	{lang: "uk", kind: KindFly, words: []string{"безпілотник", "безпілотний літальний апарат"}},

	// космические аппараты
	{lang: "ru", kind: KindSpace, words: []string{"космический корабль"}},
	{lang: "ru", kind: KindSpace, words: []string{"космический аппарат"}},
	{lang: "ru", kind: KindSpace, words: []string{"космическая станция", "орбитальная станция"}},
	{lang: "ru", kind: KindSpace, words: []string{"спутник"}},
	{lang: "ru", kind: KindSpace, words: []string{"ракета-носитель"}},
	{lang: "ru", kind: KindSpace, words: []string{"ракета"}},
	{lang: "ru", kind: KindSpace, words: []string{"шаттл"}},
	{lang: "ru", kind: KindSpace, words: []string{"луноход"}},
	{lang: "uk", kind: KindSpace, words: []string{"космічний корабель"}},
	{lang: "uk", kind: KindSpace, words: []string{"космічний апарат"}},
	{lang: "uk", kind: KindSpace, words: []string{"супутник"}},
}

var numberKeywordTable = []termGroup{
	{lang: "ru", kind: KindAuto, words: []string{"государственный номер", "гос. номер", "госномер", "г/н", "гн", "г. н."}},
	{lang: "ru", kind: KindAuto, words: []string{"государственный регистрационный знак", "гос. рег. знак", "ГРЗ", "г.р.з."}},
	{lang: "ru", kind: KindAuto, words: []string{"регистрационный знак", "рег. знак", "регзнак"}},
	{lang: "ru", kind: KindAuto, words: []string{"номерной знак"}},
	{lang: "ru", kind: KindUndefined, words: []string{"регистрационный номер", "рег. номер", "регномер"}},
	{lang: "ru", kind: KindUndefined, words: []string{"номер"}},
	{lang: "ru", kind: KindFly, words: []string{"бортовой номер", "бортовой", "б/н"}},
	{lang: "ru", kind: KindShip, words: []string{"IMO", "ИМО"}},
	{lang: "ru", kind: KindShip, words: []string{"MMSI", "ММСИ"}},
	{lang: "uk", kind: KindAuto, words: []string{"державний номер", "держномер", "д/н"}},
	{lang: "uk", kind: KindAuto, words: []string{"номерний знак"}},
	{lang: "uk", kind: KindUndefined, words: []string{"реєстраційний номер"}},
}

// brandTables таблицы марок: группы через ";", написания через ",",
// завершающее "true" помечает неоднозначную группу
var brandTables = []struct {
	kind  VehicleKind
	table string
}{
	{KindAuto, "AUDI,АУДИ;BMW,БМВ;MERCEDES,MERCEDES-BENZ,МЕРСЕДЕС,МЕРСЕДЕС-БЕНЦ;VOLKSWAGEN,VW,ФОЛЬКСВАГЕН;" +
		"TOYOTA,ТОЙОТА;NISSAN,НИССАН;HONDA,ХОНДА;MAZDA,МАЗДА;MITSUBISHI,МИЦУБИСИ;SUBARU,СУБАРУ;" +
		"SUZUKI,СУЗУКИ;LEXUS,ЛЕКСУС;HYUNDAI,ХЕНДАЙ,ХУНДАЙ;KIA,КИА;CHEVROLET,ШЕВРОЛЕ;FORD,ФОРД;" +
		"OPEL,ОПЕЛЬ;RENAULT,РЕНО;PEUGEOT,ПЕЖО;CITROEN,СИТРОЕН;SKODA,ШКОДА;VOLVO,ВОЛЬВО;FIAT,ФИАТ;" +
		"PORSCHE,ПОРШЕ;TESLA,ТЕСЛА;LAND ROVER,ЛЕНД РОВЕР;CHERY,ЧЕРИ;GEELY,ДЖИЛИ;HAVAL,ХАВАЛ;" +
		"SCANIA,СКАНИЯ;DAF,ДАФ;IVECO,ИВЕКО;MAN,МАН,true;JEEP,ДЖИП,true;" +
		"ВАЗ,VAZ;LADA,ЛАДА;ГАЗ,GAZ;УАЗ,UAZ;КАМАЗ,KAMAZ;МАЗ,MAZ;ЗИЛ,ZIL;КРАЗ,KRAZ;ПАЗ,PAZ;ЛИАЗ,LIAZ;" +
		"ЗАЗ,ZAZ;БОГДАН,BOGDAN;МОСКВИЧ,MOSKVICH;ЖИГУЛИ,ZHIGULI;ГАЗЕЛЬ,GAZELLE,true;ВОЛГА,VOLGA,true;" +
		"ОКА,OKA,true;НИВА,NIVA,true;ТАВРИЯ,TAVRIA,true;ЗАПОРОЖЕЦ,ZAPOROZHETS,true"},
	{KindFly, "ТУ,TU,true;ИЛ,IL,true;ЯК,YAK,true;АН,AN,true;СУ,SU,true;МИ,MI,true;КА,KA,true;БЕ,BE,true;" +
		"МС,MC,true;BOEING,БОИНГ;AIRBUS,АЭРОБУС,ЭРБАС;EMBRAER,ЭМБРАЕР;BOMBARDIER,БОМБАРДЬЕ;" +
		"CESSNA,ЦЕССНА;SUPERJET,СУПЕРДЖЕТ,SSJ;ATR;ROBINSON,РОБИНСОН;DJI"},
}

var keywordTable = map[keyword][]string{
	keywordOwner: {
		"принадлежит", "принадлежащий", "владелец", "собственник", "в собственности",
		"эксплуатант", "належить", "власник", "у власності",
	},
	keywordFlag: {
		"флаг", "под флагом", "порт приписки", "порт регистрации", "прапор", "під прапором", "порт реєстрації",
	},
	keywordRoute: {
		"рейс", "рейсом", "маршрут", "по маршруту", "следующий по маршруту", "направлением", "курсом",
		"маршрутом", "за маршрутом",
	},
	keywordClass: {
		"класс", "класу", "клас",
	},
	keywordDateSuffix: {
		"выпуска", "изготовления", "постройки", "в.", "випуску", "виготовлення", "побудови",
	},
}
