package kpunofficial

import "github.com/luzmane/kinotrailers/internal/models"

// collections is the static collection catalog. The API has no endpoint to
// list collections, so the catalog mirrors what kinopoisk.ru curates.
var collections = []models.Collection{
	{Slug: "the_closest_releases", Name: "Ближайшие премьеры", Category: "Онлайн-кинотеатр"},
	{Slug: "theme_comics", Name: "Лучшие фильмы, основанные на комиксах", Category: "Фильмы"},
	{Slug: "theme_catastrophe", Name: "Фильмы-катастрофы", Category: "Фильмы"},
	{Slug: "hd-family", Name: "Смотрим всей семьей", Category: "Онлайн-кинотеатр"},
	{Slug: "theme_kids_animation", Name: "Мультфильмы для самых маленьких", Category: "Фильмы"},
	{Slug: "theme_love", Name: "Фильмы про любовь и страсть: список лучших романтических фильмов", Category: "Фильмы"},
	{Slug: "oscar_winners_2021", Name: "«Оскар-2021»: победители", Category: "Премии"},
	{Slug: "series-top250", Name: "250 лучших сериалов", Category: "Сериалы"},
	{Slug: "top250", Name: "250 лучших фильмов", Category: "Фильмы"},
	{Slug: "popular-series", Name: "Популярные сериалы", Category: "Сериалы"},
	{Slug: "popular-films", Name: "Популярные фильмы", Category: "Фильмы"},
	{Slug: "theme_vampire", Name: "Фильмы про вампиров", Category: "Фильмы"},
	{Slug: "theme_zombie", Name: "Фильмы про зомби: список лучших фильмов про живых мертвецов", Category: "Фильмы"},
}

// collectionSlugMap remaps the provider-agnostic collection slugs to the
// collection types kinopoiskapiunofficial.tech understands. Slugs outside
// this table cannot be served by this provider.
var collectionSlugMap = map[string]string{
	"theme_comics":   "COMICS_THEME",
	"series-top250":  "TOP_250_TV_SHOWS",
	"top250":         "TOP_250_MOVIES",
	"popular-series": "TOP_POPULAR_ALL",
	"popular-films":  "TOP_POPULAR_MOVIES",
	"theme_vampire":  "VAMPIRE_THEME",
}
