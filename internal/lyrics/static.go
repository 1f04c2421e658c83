package lyrics

// Static is the bundled fallback pool.
var Static = []string{
	`The Beatles - "All you need is love"`,
	`Bob Dylan - "The answer is blowin' in the wind"`,
	`Queen - "Is this the real life? Is this just fantasy?"`,
	`John Lennon - "Imagine all the people living life in peace"`,
	`Simon & Garfunkel - "Hello darkness, my old friend"`,
	`David Bowie - "We can be heroes, just for one day"`,
	`Louis Armstrong - "What a wonderful world"`,
	`Bill Withers - "Lean on me, when you're not strong"`,
	`Bob Marley - "Don't worry about a thing"`,
	`Stevie Wonder - "I just called to say I love you"`,
}
