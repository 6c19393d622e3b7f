package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/songkeeper/internal/client/api"
)

func (a *App) list(ctx context.Context) {
	songs, err := a.api.ListSongs(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(songs) == 0 {
		fmt.Println("No songs yet")
		return
	}
	for _, s := range songs {
		fmt.Printf("%s  %s — %s\n", s.ID, s.Title, s.Author)
	}
}

func (a *App) add(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	author, err := GetSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	words, err := GetMultiline(a.reader, "Words", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	category, err := GetSimpleText(a.reader, "Category (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	created, err := a.api.AddSong(ctx, &api.Song{
		Title:    title,
		Author:   author,
		Words:    words,
		Category: category,
	})
	if err != nil {
		log.Printf("Adding song unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Song added with id %s", created.ID)
}

func (a *App) show(ctx context.Context, id string) {
	song, err := a.api.GetSong(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("Title:    %s\n", song.Title)
	fmt.Printf("Author:   %s\n", song.Author)
	if song.Category != "" {
		fmt.Printf("Category: %s\n", song.Category)
	}
	if song.Tone != "" {
		fmt.Printf("Tone:     %s\n", song.Tone)
	}
	fmt.Println()
	fmt.Println(song.Words)
}

func (a *App) delete(ctx context.Context, id string) {
	deleted, err := a.api.DeleteSong(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return
	}
	log.Printf("Deleted %q", deleted.Title)
}
