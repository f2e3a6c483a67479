package memory

import "dsa-quiz-service/internal/domain"

// BuiltinCatalog returns the bundled data-structures-and-algorithms questions.
func BuiltinCatalog() []domain.Question {
	out := make([]domain.Question, len(builtin))
	copy(out, builtin)
	return out
}

var builtin = []domain.Question{
	{
		ID:          1,
		Prompt:      "What is the time complexity of accessing an element in an array by index?",
		Options:     []string{"O(1)", "O(n)", "O(log n)", "O(n²)"},
		Correct:     0,
		Difficulty:  domain.Easy,
		Category:    "Arrays",
		Explanation: "Array access by index is O(1) because we can directly calculate the memory address.",
	},
	{
		ID:          2,
		Prompt:      "Which data structure follows the Last In First Out (LIFO) principle?",
		Options:     []string{"Queue", "Stack", "Array", "Linked List"},
		Correct:     1,
		Difficulty:  domain.Easy,
		Category:    "Stacks",
		Explanation: "A stack follows LIFO - the last element added is the first one to be removed.",
	},
	{
		ID:          3,
		Prompt:      "What is the time complexity of linear search?",
		Options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
		Correct:     2,
		Difficulty:  domain.Easy,
		Category:    "Searching",
		Explanation: "Linear search may need to check every element in the worst case, making it O(n).",
	},
	{
		ID:          4,
		Prompt:      "Which sorting algorithm has the best average time complexity?",
		Options:     []string{"Bubble Sort", "Selection Sort", "Merge Sort", "Insertion Sort"},
		Correct:     2,
		Difficulty:  domain.Easy,
		Category:    "Sorting",
		Explanation: "Merge Sort has O(n log n) average time complexity, which is optimal for comparison-based sorting.",
	},
	{
		ID:          5,
		Prompt:      "What does BFS stand for in graph algorithms?",
		Options:     []string{"Best First Search", "Breadth First Search", "Binary First Search", "Backward First Search"},
		Correct:     1,
		Difficulty:  domain.Easy,
		Category:    "Graphs",
		Explanation: "BFS stands for Breadth First Search, which explores nodes level by level.",
	},
	{
		ID:          6,
		Prompt:      "What is the worst-case time complexity of QuickSort?",
		Options:     []string{"O(n log n)", "O(n²)", "O(log n)", "O(n)"},
		Correct:     1,
		Difficulty:  domain.Medium,
		Category:    "Sorting",
		Explanation: "QuickSort's worst case is O(n²) when the pivot is always the smallest or largest element.",
	},
	{
		ID:          7,
		Prompt:      "In a binary search tree, what is the average time complexity for search operations?",
		Options:     []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
		Correct:     1,
		Difficulty:  domain.Medium,
		Category:    "Trees",
		Explanation: "In a balanced BST, search operations take O(log n) time on average.",
	},
	{
		ID:          8,
		Prompt:      "Which data structure is used to implement recursion?",
		Options:     []string{"Queue", "Stack", "Array", "Heap"},
		Correct:     1,
		Difficulty:  domain.Medium,
		Category:    "Recursion",
		Explanation: "The call stack is used to manage recursive function calls.",
	},
	{
		ID:          9,
		Prompt:      "What is the space complexity of merge sort?",
		Options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
		Correct:     2,
		Difficulty:  domain.Medium,
		Category:    "Sorting",
		Explanation: "Merge sort requires O(n) extra space for the temporary arrays used during merging.",
	},
	{
		ID:     10,
		Prompt: "In a hash table with chaining, what happens when a collision occurs?",
		Options: []string{
			"The new element overwrites the old one",
			"The new element is stored in the next available slot",
			"The new element is added to a linked list at that index",
			"The hash function is recalculated",
		},
		Correct:     2,
		Difficulty:  domain.Medium,
		Category:    "Hashing",
		Explanation: "With chaining, collisions are handled by maintaining a linked list at each hash table index.",
	},
	{
		ID:          11,
		Prompt:      "What is the time complexity of finding the diameter of a binary tree?",
		Options:     []string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"},
		Correct:     0,
		Difficulty:  domain.Hard,
		Category:    "Trees",
		Explanation: "The diameter can be found in O(n) time using a single traversal with optimized approach.",
	},
	{
		ID:          12,
		Prompt:      "Which algorithmic technique is used in the Knapsack problem?",
		Options:     []string{"Greedy", "Divide and Conquer", "Dynamic Programming", "Backtracking"},
		Correct:     2,
		Difficulty:  domain.Hard,
		Category:    "Dynamic Programming",
		Explanation: "The 0/1 Knapsack problem is optimally solved using Dynamic Programming.",
	},
	{
		ID:          13,
		Prompt:      "What is the minimum number of comparisons needed to find both maximum and minimum elements in an array of n elements?",
		Options:     []string{"2n - 2", "3n/2 - 2", "n - 1", "2n - 3"},
		Correct:     1,
		Difficulty:  domain.Hard,
		Category:    "Arrays",
		Explanation: "By comparing elements in pairs, we can find both min and max in 3n/2 - 2 comparisons.",
	},
	{
		ID:     14,
		Prompt: "In the context of graph algorithms, what does the 'cut property' refer to?",
		Options: []string{
			"A property of minimum spanning trees",
			"A property of shortest paths",
			"A property of maximum flow",
			"A property of topological sorting",
		},
		Correct:     0,
		Difficulty:  domain.Hard,
		Category:    "Graphs",
		Explanation: "The cut property is fundamental to proving the correctness of MST algorithms like Kruskal's and Prim's.",
	},
	{
		ID:          15,
		Prompt:      "What is the worst-case time complexity of building a heap from an unsorted array?",
		Options:     []string{"O(n)", "O(n log n)", "O(log n)", "O(n²)"},
		Correct:     0,
		Difficulty:  domain.Hard,
		Category:    "Heaps",
		Explanation: "Building a heap from an unsorted array using the bottom-up approach takes O(n) time.",
	},
}
