package summarize

// mapPrompt turns one transcript chunk into a partial note.
const mapPrompt = `Create a comprehensive and complete note from this lecture transcription segment:

%s

KEY POINTS:`

// combinePrompt synthesizes all partial notes into one structured study note.
const combinePrompt = `Using the following segments of lecture notes, create a complete and well-structured study note:

%s

The note should:
1. Start with a clear and concise introduction to the main topic.
2. Present all concepts and ideas in a logical order, ensuring clarity.
3. Highlight all important points and insights discussed in the lecture.
4. Clearly indicate topics or details specifically relevant for exams.
5. Conclude with the main takeaways and a summary of essential ideas.

Ensure the note is detailed yet simple to understand, retaining all critical information for effective exam preparation.

**DETAILED SUMMARY:** `
