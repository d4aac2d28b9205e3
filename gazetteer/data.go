package gazetteer

// Встроенный словарь: государства, крупные города и порты, транспортные компании
var builtinEntries = []Entry{
	{Kind: "geo", Names: []string{"Россия", "Российская Федерация", "РФ", "Росія", "Российский", "Російський"}, IsState: true},
	{Kind: "geo", Names: []string{"Украина", "Україна", "Украинский", "Український"}, IsState: true},
	{Kind: "geo", Names: []string{"Беларусь", "Белоруссия", "Республика Беларусь"}, IsState: true},
	{Kind: "geo", Names: []string{"Казахстан"}, IsState: true},
	{Kind: "geo", Names: []string{"Панама", "Панамский"}, IsState: true},
	{Kind: "geo", Names: []string{"Либерия", "Либерийский"}, IsState: true},
	{Kind: "geo", Names: []string{"Мальта", "Мальтийский"}, IsState: true},
	{Kind: "geo", Names: []string{"Турция"}, IsState: true},
	{Kind: "geo", Names: []string{"Германия"}, IsState: true},
	{Kind: "geo", Names: []string{"США", "Соединенные Штаты"}, IsState: true},
	{Kind: "geo", Names: []string{"Китай", "КНР"}, IsState: true},
	{Kind: "geo", Names: []string{"Москва", "Москві"}, IsCity: true},
	{Kind: "geo", Names: []string{"Санкт-Петербург", "Петербург", "СПб"}, IsCity: true},
	{Kind: "geo", Names: []string{"Сочи"}, IsCity: true},
	{Kind: "geo", Names: []string{"Казань"}, IsCity: true},
	{Kind: "geo", Names: []string{"Новосибирск"}, IsCity: true},
	{Kind: "geo", Names: []string{"Екатеринбург"}, IsCity: true},
	{Kind: "geo", Names: []string{"Владивосток"}, IsCity: true},
	{Kind: "geo", Names: []string{"Мурманск"}, IsCity: true},
	{Kind: "geo", Names: []string{"Новороссийск"}, IsCity: true},
	{Kind: "geo", Names: []string{"Калининград"}, IsCity: true},
	{Kind: "geo", Names: []string{"Архангельск"}, IsCity: true},
	{Kind: "geo", Names: []string{"Астрахань"}, IsCity: true},
	{Kind: "geo", Names: []string{"Самара"}, IsCity: true},
	{Kind: "geo", Names: []string{"Киев", "Київ"}, IsCity: true},
	{Kind: "geo", Names: []string{"Одесса", "Одеса"}, IsCity: true},
	{Kind: "geo", Names: []string{"Харьков", "Харків"}, IsCity: true},
	{Kind: "geo", Names: []string{"Львов", "Львів"}, IsCity: true},
	{Kind: "geo", Names: []string{"Минск"}, IsCity: true},
	{Kind: "geo", Names: []string{"Стамбул"}, IsCity: true},
	{Kind: "geo", Names: []string{"Байконур"}, IsCity: true},
	{Kind: "organization", Names: []string{"Аэрофлот", "ПАО Аэрофлот"}},
	{Kind: "organization", Names: []string{"РЖД", "ОАО РЖД"}},
	{Kind: "organization", Names: []string{"Совкомфлот", "ПАО Совкомфлот"}},
	{Kind: "organization", Names: []string{"Роскосмос", "Госкорпорация Роскосмос"}},
	{Kind: "organization", Names: []string{"Мосгортранс"}},
	{Kind: "organization", Names: []string{"Укрзалізниця"}},
	{Kind: "organization", Names: []string{"Мотор Січ"}},
	{Kind: "organization", Names: []string{"Антонов", "ГП Антонов"}},
	{Kind: "organization", Names: []string{"ГИБДД"}},
	{Kind: "organization", Names: []string{"ГАИ", "ДАІ"}},
}

var firstNameList = []string{
	"Александр", "Алексей", "Андрей", "Антон", "Борис", "Вадим", "Валерий", "Василий",
	"Виктор", "Владимир", "Дмитрий", "Евгений", "Иван", "Игорь", "Кирилл", "Константин",
	"Максим", "Михаил", "Никита", "Николай", "Олег", "Павел", "Петр", "Пётр", "Роман",
	"Сергей", "Степан", "Юрий", "Анна", "Елена", "Екатерина", "Ирина", "Мария", "Наталья",
	"Ольга", "Светлана", "Татьяна", "Юлия", "Олександр", "Сергій", "Андрій", "Петро",
	"Іван", "Микола", "Тарас", "Оксана",
	"John", "Michael", "David", "James", "Robert", "William", "Peter", "Mary", "Anna",
}
